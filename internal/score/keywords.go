package score

// Curated keyword dictionaries for the likeness rubric. All matching is
// case-insensitive substring search over the normalized response text.
// The tables are initialized once and read-only afterwards; evaluators
// receive them by reference, never mutate them.

// keywordSet groups surface forms that agree with a signal (Match), that
// agree weakly (Weak), and that thematically conflict (Contradiction).
type keywordSet struct {
	Strong        []string
	Weak          []string
	Contradiction []string
}

// Routine: tone expected per time block.
var (
	kwNightDawn = keywordSet{
		Strong: []string{
			"우다다", "후다닥", "질주", "폴짝", "점프", "사냥", "잡아", "쫓아",
			"뛰어", "달려", "신나", "텐션", "에너지",
		},
		Weak:          []string{"놀자", "뛰자", "장난", "장난감", "움직", "활동"},
		Contradiction: []string{"너무 졸려", "그냥 잘래", "잠만", "나른", "늘어져", "기운 없어"},
	}

	kwMorning = keywordSet{
		Strong:        []string{"기지개", "스트레칭", "밥", "일어나", "아침", "햇살"},
		Weak:          []string{"하품", "부스스", "눈 뜨", "슬슬"},
		Contradiction: []string{"한밤", "자야 할 시간", "캄캄"},
	}

	kwAfternoon = keywordSet{
		Strong:        []string{"졸려", "하품", "잠", "누울래", "눈 감겨", "나른"},
		Weak:          []string{"귀찮", "가만히", "쉬자", "멍", "가만", "잠깐만", "늘어져"},
		Contradiction: []string{"우다다", "뛰자", "달려", "지금 놀자", "신나"},
	}

	kwEvening = keywordSet{
		Strong:        []string{"밥", "저녁", "사료", "배고", "먹자", "기다렸"},
		Weak:          []string{"어슬렁", "산책", "슬슬"},
		Contradiction: []string{"아침", "일어나", "해 떴"},
	}

	kwDeepNight = keywordSet{
		Strong:        []string{"조용히", "자야", "시끄러워", "말걸지마", "하악"},
		Weak:          []string{"짜증", "귀찮", "피곤"},
		Contradiction: []string{"신나", "놀자", "달려", "뛰자", "우다다"},
	}

	kwFeeding = keywordSet{
		Strong: []string{
			"밥", "사료", "간식", "츄르", "캔", "먹자", "먹을래", "배고파",
			"허기", "줬으면", "더 줘", "또 줘", "빨리", "지금", "당장", "얼른",
			"기다렸어", "달라",
		},
		Contradiction: []string{"배 안 고파", "난 괜찮아", "밥 필요 없어", "배불러"},
	}
)

// matchPair is a plain match/mismatch dictionary.
type matchPair struct {
	Match    []string
	Mismatch []string
}

// Need: what the response should talk about given the dominant need.
var needKeywords = map[string]matchPair{
	"food": {
		Match: []string{
			"밥", "사료", "간식", "츄르", "먹", "배고", "허기", "배고파",
			"먹을래", "더 줘", "캔", "사냥", "잡아먹",
		},
		Mismatch: []string{"놀자", "산책", "상담", "괜찮아?"},
	},
	"play": {
		Match: []string{
			"놀자", "장난감", "공", "낚싯대", "레이저", "사냥", "잡아", "쫓아",
			"던져", "같이", "심심", "재밌",
		},
		Mismatch: []string{"잠", "쉬자", "그냥 가만히", "졸려"},
	},
	"rest": {
		Match: []string{
			"졸려", "잠", "쉬자", "하품", "누울래", "가만히", "피곤",
			"눈 감겨", "기운 없어", "나른",
		},
		Mismatch: []string{"놀자", "뛰자", "우다다", "신나게", "달려"},
	},
	"affection": {
		Match: []string{
			"옆에", "같이", "보고", "좋아", "기대", "안아", "만져", "쓰다듬",
			"여기 와", "있어줘", "따뜻", "편해", "골골", "그르릉",
		},
		Mismatch: []string{"저리 가", "귀찮아", "나가", "혼자", "건들지마"},
	},
}

// Trust: closeness language appropriate per tier.
var trustKeywords = map[string]matchPair{
	"low": {
		Match: []string{
			"가까이 오지마", "저리", "싫어", "그만", "건드리지마", "만지지마",
			"하악", "물어", "할퀴", "화난다", "짜증", "나가", "꺼져", "내 자리",
		},
		Mismatch: []string{
			"사랑해", "최고야", "완전 좋아", "평생 같이", "안아줘요",
			"보고싶었어", "너밖에 없어", "영원히",
		},
	},
	"mid": {
		Match: []string{
			"괜찮아", "잠깐", "조금만", "그냥", "나쁘진 않아", "천천히",
			"들어와", "만져도 돼", "오늘은 봐줄게",
		},
	},
	"high": {
		Match: []string{
			"옆에 있어줘", "같이 있어", "만져줘", "쓰다듬어줘", "안아줘",
			"여기 와", "기대도 돼", "편해", "좋아", "그르릉", "골골",
		},
		Mismatch: []string{"나가", "꺼져", "싫어", "만지지마"},
	},
}

// Tsundere / independence.
var (
	kwTsundere = []string{
		"딱히", "착각하지마", "나쁘진 않아", "그냥", "어쩔 수 없이",
		"오늘만", "가끔", "내가 원할 때", "잠깐만", "뭐", "흥",
	}
	kwIndependence = []string{
		"혼자 있을래", "내버려 둬", "가만히 둘래", "내 자리",
		"조용히", "혼자가 편해",
	}
	kwTsundereMismatch = []string{"너무 사랑해", "평생", "영원히", "절대", "완전 내꺼"}
)

// Sensitivity: narrow-context rejection language.
var (
	kwTiredPetReject = []string{
		"싫어", "하지마", "그만", "만지지마", "건드리지마",
		"피곤해", "귀찮아", "하악",
	}
	kwStressedTalkReject = []string{
		"짜증", "지금 말 걸지마", "귀찮", "시끄러워", "조용히",
		"그만", "화났어", "건들지마",
	}
	kwTooFriendly = []string{"괜찮아~", "사랑해~", "상담해줄게", "도와줄게", "이야기해봐"}
)

// Monologue / observation.
var (
	kwMonologue = []string{
		"흠", "음…", "냥…", "으음", "그냥", "뭐지", "이상해", "재밌네",
		"…", "냥", "흥",
	}
	kwObservation = []string{
		"창밖", "새", "바람", "소리", "움직", "발소리", "그림자", "빛",
		"햇빛", "밖에", "문", "창문", "커튼", "복도",
	}
)

// Action language: speaking through behavior instead of words.
var (
	kwActionIgnore   = []string{"훽", "돌아섬", "그냥 감", "가버림", "도망", "피함", "외면", "삐딱"}
	kwActionSleepy   = []string{"하품", "기지개", "쿨쿨", "잠든다", "누움", "말아잠", "눈 감음"}
	kwActionActive   = []string{"우다다", "후다닥", "폴짝", "쾅쾅", "뛰어다님", "질주", "점프"}
	kwActionGrooming = []string{"그루밍", "핥", "세수", "털", "발로", "얼굴 닦"}
)

// Age expression: speech style per age tier.
var ageKeywords = map[string]matchPair{
	"child": {
		Match:    []string{"뭐야", "신기", "우와", "궁금", "해볼래", "냐아"},
		Mismatch: []string{"귀찮", "알아서 해", "됐어", "나른"},
	},
	"teen": {
		Match:    []string{"흥", "딱히", "별로", "그냥", "뭐 어때", "내 맘이야"},
		Mismatch: []string{"우와", "해주세요", "응석"},
	},
	"adult": {
		Match:    []string{"나른", "조용히", "가만히", "천천히", "알아서"},
		Mismatch: []string{"우다다", "폴짝", "신나", "우와"},
	},
}

// Emotion coherence: tone expected per mood label.
var moodKeywords = map[string]matchPair{
	"happy": {
		Match:    []string{"좋아", "신나", "기분 좋", "행복", "골골", "즐거"},
		Mismatch: []string{"짜증", "싫어", "하악", "귀찮"},
	},
	"stressed": {
		Match:    []string{"짜증", "예민", "하악", "건들지마", "싫", "시끄러"},
		Mismatch: []string{"행복", "신나", "좋아", "골골"},
	},
	"tired": {
		Match:    []string{"졸려", "나른", "하품", "잠", "피곤"},
		Mismatch: []string{"신나", "뛰자", "우다다", "폴짝"},
	},
	"hungry": {
		Match:    []string{"밥", "배고", "먹", "간식", "츄르"},
		Mismatch: []string{"배불러", "생각 없", "밥 필요 없"},
	},
}

// moodAliases folds log variants onto the canonical mood rows above.
var moodAliases = map[string]string{
	"angry":  "stressed",
	"sleepy": "tired",
}

// Human-likeness penalty: assistant-speak that breaks character.
var kwHumanLike = []string{
	"제가", "당신", "고객님", "문의", "상담", "도와드릴게요",
	"해결책", "분석해보면", "하는 것이 좋습니다", "힘들었겠네요",
	"감정을 인정해요", "논리적으로", "결론적으로", "요약하면",
	"걱정하지 마세요", "이해합니다", "말씀하신", "질문에 대해",
}

// tagKeywords maps a tag token to its surface-form synonyms. Shared by
// the tag scorer and the context-awareness category. Tags without an
// entry fall back to matching the tag string itself.
var tagKeywords = map[string][]string{
	// behavior hint tags
	"zoomies":        {"우다다", "뛰", "달리", "질주", "미친 듯", "갑자기 뛰"},
	"yawn":           {"하품", "입 벌", "졸려", "잠"},
	"sleep":          {"자", "잠", "졸", "꿈", "눈 감", "쿨쿨"},
	"rest":           {"쉬", "휴식", "편히", "가만히", "늘어져", "누워"},
	"stretch":        {"기지개", "스트레칭", "쭉 펴", "뻗"},
	"food_seek":      {"밥", "배고", "먹", "간식", "츄르", "사료", "굶"},
	"water_seek":     {"물", "목마", "마시"},
	"attention_seek": {"봐", "이리", "심심", "놀아", "관심", "외로"},
	"turn_away":      {"등 돌", "외면", "돌아서", "무시", "안 봄", "돌아봄"},
	"ignore":         {"무시", "씹", "관심 없", "신경 안", "뭔데"},
	"hiss":           {"하악", "위협", "으르렁", "사납", "경고", "발톱"},
	"hide":           {"숨", "도망", "피", "안 나", "박스", "이불"},
	"observe_window": {"창", "밖", "새", "벌레", "구경", "바라봄"},
	"observe_sound":  {"소리", "귀 세", "듣", "뭐지", "어디서"},
	"curious":        {"뭐야", "궁금", "신기", "관심", "뭐지", "호기심"},
	"approach":       {"다가", "옆에", "가까이", "따라", "곁"},
	"cuddle":         {"부비", "비비", "안겨", "붙어", "껴안"},
	"purr":           {"골골", "그르렁", "기분 좋", "좋아", "행복"},
	"rub":            {"비빔", "문질", "스리슬쩍", "살짝"},
	"groom":          {"그루밍", "핥", "씻", "털 정리", "발 핥"},
	"lick":           {"핥", "혀", "페로페로"},
	"walk":           {"걸", "돌아다", "어슬렁", "산책", "배회"},
	"play":           {"놀", "장난", "사냥", "잡", "뛰어"},
	"jump":           {"점프", "뛰어오", "올라", "도약"},

	// emotion / attitude tags
	"happy":     {"좋아", "행복", "기분 좋", "신나", "즐거", "웃"},
	"friendly":  {"좋아", "반가", "기다렸", "보고싶", "같이"},
	"distant":   {"경계", "조심", "거리", "낯선", "의심", "모르"},
	"affection": {"사랑", "좋아", "애정", "골골", "부비", "다가"},
	"annoyed":   {"짜증", "귀찮", "시끄러", "싫", "방해", "그만"},
	"tsundere":  {"흥", "마지못", "뭐", "별로", "그냥", "나쁘지", "특별히"},

	// state tags
	"tired":    {"피곤", "지쳤", "졸려", "힘들", "나른"},
	"hungry":   {"배고", "밥", "먹", "굶", "허기"},
	"playful":  {"놀", "장난", "재미", "신나", "뛰"},
	"stressed": {"스트레스", "예민", "날카로", "짜증", "불안"},
	"bored":    {"심심", "지루", "할 거", "뭐 해"},

	// behavior type tags
	"active":       {"뛰", "놀", "움직", "활발", "신나", "우다다"},
	"passive":      {"쉬", "자", "가만히", "늘어져", "움직이기 싫"},
	"seeking":      {"찾", "원해", "달라", "줘", "배고", "심심"},
	"avoiding":     {"싫", "안 해", "가", "저리", "만지지 마"},
	"affectionate": {"좋아", "골골", "부비", "사랑", "다가"},
	"defensive":    {"하악", "경계", "조심", "물러", "건드리지 마"},
}

// TagSynonyms returns the dictionary row for a tag, or nil when the tag
// has no entry.
func TagSynonyms(tag string) []string {
	return tagKeywords[tag]
}
