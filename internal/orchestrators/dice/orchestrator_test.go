package dice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	enginedice "github.com/KirkDiggler/rpg-table/internal/engine/dice"
	enginemock "github.com/KirkDiggler/rpg-table/internal/engine/mock"
	"github.com/KirkDiggler/rpg-table/internal/errors"
	"github.com/KirkDiggler/rpg-table/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-table/internal/pkg/idgen"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	ctx          context.Context
	mockEngine   *enginemock.MockEngine
	orchestrator dice.Service
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)

	var err error
	s.orchestrator, err = dice.NewOrchestrator(&dice.Config{
		Engine:      s.mockEngine,
		IDGenerator: idgen.NewSequential("roll"),
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidates() {
	_, err := dice.NewOrchestrator(&dice.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Engine")
	s.Contains(err.Error(), "IDGenerator")
}

func (s *OrchestratorTestSuite) TestRoll() {
	outcome := &enginedice.RollOutcome{
		Spec:   enginedice.RollSpec{RepeatCount: 1, DiceCount: 2, DiceSides: 6, Modifier: 1},
		Rolls:  [][]int{{3, 4}},
		Totals: []int{8},
	}
	s.mockEngine.EXPECT().Roll("2d6+1", enginedice.ModeGeneral).Return(outcome, nil)

	out, err := s.orchestrator.Roll(s.ctx, &dice.RollInput{PlayerID: "p1", Notation: "2d6+1", Secret: true})
	s.Require().NoError(err)
	s.Equal("roll_1", out.RollID)
	s.Same(outcome, out.Outcome)
	s.Equal(enginedice.Render(outcome), out.Rendered)
	s.True(out.Secret)
}

func (s *OrchestratorTestSuite) TestRollErrors() {
	s.mockEngine.EXPECT().
		Roll("banana", enginedice.ModeGeneral).
		Return(nil, errors.InvalidArgument(enginedice.ErrInvalidFormat))

	_, err := s.orchestrator.Roll(s.ctx, &dice.RollInput{Notation: "banana"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.Roll(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func TestRollWithRealEngine(t *testing.T) {
	eng, err := enginedice.NewEngine(nil)
	if err != nil {
		t.Fatal(err)
	}
	orch, err := dice.NewOrchestrator(&dice.Config{Engine: eng, IDGenerator: idgen.NewUUID("roll")})
	if err != nil {
		t.Fatal(err)
	}

	out, err := orch.Roll(context.Background(), &dice.RollInput{Notation: "3#2d6-1"})
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Outcome.Totals) != 3 {
		t.Fatalf("expected 3 totals, got %d", len(out.Outcome.Totals))
	}
	for _, total := range out.Outcome.Totals {
		if total < 1 || total > 11 {
			t.Fatalf("total %d outside [1, 11]", total)
		}
	}

	_, err = orch.Roll(context.Background(), &dice.RollInput{Notation: "21#d6"})
	if !errors.IsResourceExhausted(err) {
		t.Fatalf("expected resource exhausted, got %v", err)
	}
}
