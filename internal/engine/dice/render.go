package dice

import (
	"fmt"
	"strings"
)

// Render formats an outcome for chat. Each repeat shows its formula, the
// individual dice, their sum, the modifier when nonzero and the total.
// Repeats are separated by a blank line.
func Render(outcome *RollOutcome) string {
	if outcome == nil {
		return ""
	}

	blocks := make([]string, len(outcome.Totals))
	for i := range outcome.Totals {
		blocks[i] = renderRepeat(outcome, i)
	}
	return strings.Join(blocks, "\n\n")
}

func renderRepeat(outcome *RollOutcome, i int) string {
	dice := make([]string, len(outcome.Rolls[i]))
	for j, r := range outcome.Rolls[i] {
		dice[j] = fmt.Sprintf("`%d`", r)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Roll:** `%s`\n", outcome.Spec.Formula())
	fmt.Fprintf(&b, "🎲 **Dice:** %s (Sum: `%d`)\n", strings.Join(dice, " "), outcome.Sum(i))
	if outcome.Spec.Modifier != 0 {
		fmt.Fprintf(&b, "⚙️ **Modifier:** `%+d`\n", outcome.Spec.Modifier)
	}
	fmt.Fprintf(&b, "📊 **Total:** **%d**", outcome.Totals[i])
	return b.String()
}
