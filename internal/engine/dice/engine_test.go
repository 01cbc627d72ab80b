package dice_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-table/internal/engine/dice"
	"github.com/KirkDiggler/rpg-table/internal/errors"
)

// scriptedRoller hands out values in order, wrapping around
type scriptedRoller struct {
	values []int
	next   int
	err    error
}

func (r *scriptedRoller) Roll(size int) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	v := r.values[r.next%len(r.values)]
	r.next++
	return v, nil
}

func (r *scriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

type EngineTestSuite struct {
	suite.Suite
	roller *scriptedRoller
	engine *dice.Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.roller = &scriptedRoller{values: []int{3, 5, 1, 6}}
	engine, err := dice.NewEngine(&dice.Config{Roller: s.roller})
	s.Require().NoError(err)
	s.engine = engine
}

func (s *EngineTestSuite) TestNewEngineDefaults() {
	engine, err := dice.NewEngine(nil)
	s.Require().NoError(err)
	s.Assert().Equal(dice.DefaultLimits(), engine.Limits())
}

func (s *EngineTestSuite) TestNewEngineRejectsBadLimits() {
	_, err := dice.NewEngine(&dice.Config{Limits: dice.Limits{MaxRepeat: 0, MaxDice: 5, MaxSides: 5}})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestExecuteScripted() {
	spec, err := dice.Parse("2#2d6+1")
	s.Require().NoError(err)

	outcome, err := s.engine.Execute(spec, dice.ModeGeneral)
	s.Require().NoError(err)

	s.Assert().Equal([][]int{{3, 5}, {1, 6}}, outcome.Rolls)
	s.Assert().Equal([]int{9, 8}, outcome.Totals)
	s.Assert().Equal(8, outcome.Sum(0))
	s.Assert().Equal(7, outcome.Sum(1))
}

func (s *EngineTestSuite) TestGeneralLimits() {
	testCases := []struct {
		notation string
		wantErr  bool
	}{
		{"20#100d1000", false},
		{"21#d6", true},
		{"101d6", true},
		{"d1001", true},
	}

	for _, tc := range testCases {
		s.Run(tc.notation, func() {
			outcome, err := s.engine.Roll(tc.notation, dice.ModeGeneral)
			if tc.wantErr {
				s.Require().Error(err)
				s.Assert().True(errors.IsResourceExhausted(err))
				s.Assert().Nil(outcome)
				return
			}
			s.Require().NoError(err)
			s.Assert().Len(outcome.Totals, 20)
		})
	}
}

func (s *EngineTestSuite) TestSingleModeRejectsRepeats() {
	_, err := s.engine.Roll("2#d20", dice.ModeSingle)
	s.Require().Error(err)
	s.Assert().True(errors.IsResourceExhausted(err))

	outcome, err := s.engine.Roll("1#d20+5", dice.ModeSingle)
	s.Require().NoError(err)
	s.Assert().Len(outcome.Totals, 1)
}

func (s *EngineTestSuite) TestSingleModeIgnoresSizeLimits() {
	engine, err := dice.NewEngine(nil)
	s.Require().NoError(err)

	for _, notation := range []string{"150d6", "d2000", "1#101d1001+3"} {
		s.Run(notation, func() {
			outcome, err := engine.Roll(notation, dice.ModeSingle)
			s.Require().NoError(err)
			s.Assert().Len(outcome.Totals, 1)
		})
	}

	_, err = engine.Roll("150d6", dice.ModeGeneral)
	s.Assert().True(errors.IsResourceExhausted(err))
}

func (s *EngineTestSuite) TestTotalOverflow() {
	engine, err := dice.NewEngine(nil)
	s.Require().NoError(err)

	testCases := []struct {
		notation string
		mode     dice.Mode
		wantErr  bool
	}{
		{"d6+9223372036854775807", dice.ModeGeneral, true},
		{"d6+9223372036854775807", dice.ModeSingle, true},
		{"d1-9223372036854775807", dice.ModeSingle, false},
		{"d1+9223372036854775806", dice.ModeSingle, false},
	}

	for _, tc := range testCases {
		s.Run(tc.notation, func() {
			outcome, err := engine.Roll(tc.notation, tc.mode)
			if tc.wantErr {
				s.Require().Error(err)
				s.Assert().True(errors.IsResourceExhausted(err))
				s.Assert().Nil(outcome)
				return
			}
			s.Require().NoError(err)
			spec, err := dice.Parse(tc.notation)
			s.Require().NoError(err)
			s.Assert().Equal([]int{1 + spec.Modifier}, outcome.Totals)
		})
	}
}

func (s *EngineTestSuite) TestSumOverflow() {
	s.roller.values = []int{math.MaxInt}
	_, err := s.engine.Roll("2d9223372036854775807", dice.ModeSingle)
	s.Require().Error(err)
	s.Assert().True(errors.IsResourceExhausted(err))

	s.roller.values = []int{1}
	outcome, err := s.engine.Roll("d6-9223372036854775807", dice.ModeGeneral)
	s.Require().NoError(err)
	s.Assert().Equal([]int{math.MinInt + 2}, outcome.Totals)
}

func (s *EngineTestSuite) TestRollParseError() {
	_, err := s.engine.Roll("banana", dice.ModeGeneral)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestRollerFailure() {
	s.roller.err = fmt.Errorf("entropy exhausted")
	_, err := s.engine.Roll("d20", dice.ModeGeneral)
	s.Require().Error(err)
	s.Assert().True(errors.IsInternal(err))
}

func (s *EngineTestSuite) TestRollerOutOfRange() {
	s.roller.values = []int{7}
	_, err := s.engine.Roll("d6", dice.ModeGeneral)
	s.Require().Error(err)
	s.Assert().True(errors.IsInternal(err))
}

func (s *EngineTestSuite) TestExecuteBoundsWithRealRoller() {
	engine, err := dice.NewEngine(nil)
	s.Require().NoError(err)

	specs := []string{"d1", "d20+5", "4d6-2", "20#3d8+1", "2#100d1000-50"}
	for _, notation := range specs {
		spec, err := dice.Parse(notation)
		s.Require().NoError(err)

		for i := 0; i < 25; i++ {
			outcome, err := engine.Execute(spec, dice.ModeGeneral)
			s.Require().NoError(err)
			s.Require().Len(outcome.Totals, spec.RepeatCount)
			s.Require().Len(outcome.Rolls, spec.RepeatCount)

			low := spec.DiceCount + spec.Modifier
			high := spec.DiceCount*spec.DiceSides + spec.Modifier
			for r, total := range outcome.Totals {
				s.Assert().Len(outcome.Rolls[r], spec.DiceCount)
				s.Assert().GreaterOrEqual(total, low)
				s.Assert().LessOrEqual(total, high)
			}
		}
	}
}

func (s *EngineTestSuite) TestRender() {
	outcome, err := s.engine.Roll("2#2d6+1", dice.ModeGeneral)
	s.Require().NoError(err)

	text := dice.Render(outcome)
	s.Assert().Contains(text, "`2d6+1`")
	s.Assert().Contains(text, "`3` `5` (Sum: `8`)")
	s.Assert().Contains(text, "`+1`")
	s.Assert().Contains(text, "**9**")
	s.Assert().Contains(text, "`1` `6` (Sum: `7`)")
	s.Assert().Contains(text, "**8**")
	s.Assert().Contains(text, "\n\n")
}

func (s *EngineTestSuite) TestRenderOmitsZeroModifier() {
	outcome, err := s.engine.Roll("d6", dice.ModeGeneral)
	s.Require().NoError(err)

	text := dice.Render(outcome)
	s.Assert().NotContains(text, "Modifier")
	s.Assert().Equal("", dice.Render(nil))
}
