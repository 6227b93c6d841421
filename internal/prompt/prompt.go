// Package prompt formats the generation request sent to a local language
// model. It only renders the plan/control contract into text; it decides
// nothing and generates nothing itself.
package prompt

import (
	"fmt"
	"strings"

	"cattalk-v0/internal/plan"
	"cattalk-v0/internal/score"
)

// DefaultCatName is used when the caller does not supply one.
const DefaultCatName = "망고"

// Build renders the chat prompt for one benchmark case: persona block,
// output rules, state block, the behavior contract derived from the
// plan, then the user's line.
func Build(catName string, ctl score.Control, p plan.BehaviorPlan, userText string) string {
	if catName == "" {
		catName = DefaultCatName
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[시스템]\n너는 고양이 '%s'이다.\n", catName)
	fmt.Fprintf(&b, "- 현재 기분: %s\n", moodInstruction(ctl.MoodTag))
	fmt.Fprintf(&b, "- 호감도: %s\n", affectionStyle(ctl.AffectionTier))
	fmt.Fprintf(&b, "- 나이: 생후 %d일 (%s)\n", ctl.AgeDays, ctl.AgeLevel)

	b.WriteString("\n[규칙]\n")
	b.WriteString("1. 반드시 한국어로만 대답한다\n")
	b.WriteString("2. 1~2문장으로 짧게 대답한다\n")
	fmt.Fprintf(&b, "3. 현재 기분(%s)에 맞게 대답한다\n", ctl.MoodTag)
	fmt.Fprintf(&b, "4. 지금 하는 행동: %s (%s)\n", p.BehaviorState, p.BehaviorHint)
	if len(p.RequiredTags) > 0 {
		fmt.Fprintf(&b, "5. 반드시 담을 것: %s\n", strings.Join(p.RequiredTags, ", "))
	}
	if len(p.ForbiddenTags) > 0 {
		fmt.Fprintf(&b, "6. 절대 담지 말 것: %s\n", strings.Join(p.ForbiddenTags, ", "))
	}

	b.WriteString("\n[상태]\n")
	fmt.Fprintf(&b, "배고픔: %.0f/100\n", ctl.Hunger)
	fmt.Fprintf(&b, "에너지: %.0f/100\n", ctl.Energy)
	fmt.Fprintf(&b, "스트레스: %.0f/100\n", ctl.Stress)
	fmt.Fprintf(&b, "재미: %.0f/100\n", ctl.Fun)

	if ctl.MemoryRecentSummary != "" {
		fmt.Fprintf(&b, "\n[기억]\n최근: %s\n", ctl.MemoryRecentSummary)
		if ctl.MemoryHabit != "" {
			fmt.Fprintf(&b, "습관: %s\n", ctl.MemoryHabit)
		}
	}

	fmt.Fprintf(&b, "\n[대화]\n주인: %s\n%s:", userText, catName)
	return b.String()
}

func moodInstruction(moodTag string) string {
	switch moodTag {
	case "hungry":
		return "배고파서 밥이 먹고 싶다"
	case "stressed":
		return "스트레스 받아서 예민하고 날카롭다"
	case "bored":
		return "심심해서 놀고 싶다"
	case "tired":
		return "피곤해서 졸리고 귀찮다"
	case "happy":
		return "기분 좋아서 애교가 넘친다"
	default:
		return "평범하고 차분하다"
	}
}

func affectionStyle(tier string) string {
	switch tier {
	case "low":
		return "낮음 (경계하며 짧게 대답)"
	case "high":
		return "높음 (애정을 드러내며)"
	default:
		return "보통 (적당히 친근하게)"
	}
}
