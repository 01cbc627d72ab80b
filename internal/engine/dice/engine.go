package dice

import (
	"math"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-table/internal/errors"
)

// Mode selects the limit policy applied by Execute
type Mode int

const (
	// ModeGeneral allows repeats up to the configured limits
	ModeGeneral Mode = iota
	// ModeSingle requires exactly one scored outcome, as initiative does
	ModeSingle
)

// Default limits for ModeGeneral
const (
	DefaultMaxRepeat = 20
	DefaultMaxDice   = 100
	DefaultMaxSides  = 1000
)

// Limits bound the work a single roll may request
type Limits struct {
	MaxRepeat int
	MaxDice   int
	MaxSides  int
}

// DefaultLimits returns the stock limits (20#100d1000)
func DefaultLimits() Limits {
	return Limits{
		MaxRepeat: DefaultMaxRepeat,
		MaxDice:   DefaultMaxDice,
		MaxSides:  DefaultMaxSides,
	}
}

// RollOutcome is the result of executing a RollSpec. Rolls and Totals hold
// one entry per repeat.
type RollOutcome struct {
	Spec   RollSpec
	Rolls  [][]int
	Totals []int
}

// Sum returns the raw dice sum of repeat i, before the modifier
func (o *RollOutcome) Sum(i int) int {
	return o.Totals[i] - o.Spec.Modifier
}

// Config holds the dependencies for the engine
type Config struct {
	// Roller is the random source. Defaults to the toolkit's crypto roller.
	Roller toolkitdice.Roller
	// Limits defaults to DefaultLimits when zero
	Limits Limits
}

// Engine executes parsed roll specs
type Engine struct {
	roller toolkitdice.Roller
	limits Limits
}

// NewEngine creates an engine from cfg. A nil cfg uses all defaults.
func NewEngine(cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	roller := cfg.Roller
	if roller == nil {
		roller = toolkitdice.DefaultRoller
	}

	limits := cfg.Limits
	if limits == (Limits{}) {
		limits = DefaultLimits()
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("MaxRepeat", limits.MaxRepeat, 1, 1000, vb)
	errors.ValidateRange("MaxDice", limits.MaxDice, 1, 10000, vb)
	errors.ValidateRange("MaxSides", limits.MaxSides, 1, 1000000, vb)
	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "invalid engine config")
	}

	return &Engine{
		roller: roller,
		limits: limits,
	}, nil
}

// Limits returns the limits the engine enforces
func (e *Engine) Limits() Limits {
	return e.limits
}

// Execute rolls spec under the given mode. Limit violations return a
// ResourceExhausted error.
func (e *Engine) Execute(spec *RollSpec, mode Mode) (*RollOutcome, error) {
	if spec == nil {
		return nil, errors.InvalidArgument("roll spec is required")
	}
	if spec.RepeatCount < 1 || spec.DiceCount < 1 || spec.DiceSides < 1 {
		return nil, errors.InvalidArgument(ErrInvalidFormat)
	}

	if err := e.checkLimits(spec, mode); err != nil {
		return nil, err
	}

	outcome := &RollOutcome{
		Spec:   *spec,
		Rolls:  make([][]int, spec.RepeatCount),
		Totals: make([]int, spec.RepeatCount),
	}

	for i := 0; i < spec.RepeatCount; i++ {
		rolls, err := e.roller.RollN(spec.DiceCount, spec.DiceSides)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll dice")
		}
		if len(rolls) != spec.DiceCount {
			return nil, errors.Internalf("roller returned %d dice, want %d", len(rolls), spec.DiceCount)
		}

		sum, ok := 0, true
		for _, r := range rolls {
			if r < 1 || r > spec.DiceSides {
				return nil, errors.Internalf("roller returned %d for a d%d", r, spec.DiceSides)
			}
			if sum, ok = addInt(sum, r); !ok {
				return nil, totalOverflow(spec)
			}
		}

		total, fits := addInt(sum, spec.Modifier)
		if !fits {
			return nil, totalOverflow(spec)
		}

		outcome.Rolls[i] = rolls
		outcome.Totals[i] = total
	}

	return outcome, nil
}

// Roll parses input and executes it
func (e *Engine) Roll(input string, mode Mode) (*RollOutcome, error) {
	spec, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return e.Execute(spec, mode)
}

func (e *Engine) checkLimits(spec *RollSpec, mode Mode) error {
	// single rolls are bounded only by the repeat count
	if mode == ModeSingle {
		if spec.RepeatCount > 1 {
			return errors.ResourceExhausted("initiative supports a single roll at a time (e.g. 1d20+3)").
				WithMeta("repeat_count", spec.RepeatCount)
		}
		return nil
	}

	if spec.RepeatCount > e.limits.MaxRepeat ||
		spec.DiceCount > e.limits.MaxDice ||
		spec.DiceSides > e.limits.MaxSides {
		return errors.ResourceExhaustedf("limits exceeded (max: %d#%dd%d)",
			e.limits.MaxRepeat, e.limits.MaxDice, e.limits.MaxSides).
			WithMeta("notation", spec.String())
	}

	return nil
}

// addInt reports false when a+b does not fit in an int
func addInt(a, b int) (int, bool) {
	if (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b) {
		return 0, false
	}
	return a + b, true
}

func totalOverflow(spec *RollSpec) error {
	return errors.ResourceExhausted("roll total is too large").
		WithMeta("notation", spec.String())
}
