package chat_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-table/internal/confirm"
	enginedice "github.com/KirkDiggler/rpg-table/internal/engine/dice"
	"github.com/KirkDiggler/rpg-table/internal/entities"
	"github.com/KirkDiggler/rpg-table/internal/errors"
	"github.com/KirkDiggler/rpg-table/internal/handlers/chat"
	chatmock "github.com/KirkDiggler/rpg-table/internal/handlers/chat/mock"
	"github.com/KirkDiggler/rpg-table/internal/orchestrators/character"
	charactermock "github.com/KirkDiggler/rpg-table/internal/orchestrators/character/mock"
	"github.com/KirkDiggler/rpg-table/internal/orchestrators/dice"
	dicemock "github.com/KirkDiggler/rpg-table/internal/orchestrators/dice/mock"
	"github.com/KirkDiggler/rpg-table/internal/orchestrators/initiative"
	initiativemock "github.com/KirkDiggler/rpg-table/internal/orchestrators/initiative/mock"
	"github.com/KirkDiggler/rpg-table/internal/pkg/idgen"
)

// manualClock never fires until told to
type manualClock struct {
	fire chan time.Time
}

func (c *manualClock) Now() time.Time { return time.Time{} }

func (c *manualClock) After(time.Duration) <-chan time.Time { return c.fire }

type HandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	ctx            context.Context
	clock          *manualClock
	mockCharacters *charactermock.MockService
	mockInitiative *initiativemock.MockService
	mockDice       *dicemock.MockService
	mockResponder  *chatmock.MockResponder
	handler        *chat.Handler

	mu      sync.Mutex
	sent    []string
	direct  []string
	sentSig chan struct{}
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.clock = &manualClock{fire: make(chan time.Time, 1)}
	s.mockCharacters = charactermock.NewMockService(s.ctrl)
	s.mockInitiative = initiativemock.NewMockService(s.ctrl)
	s.mockDice = dicemock.NewMockService(s.ctrl)
	s.mockResponder = chatmock.NewMockResponder(s.ctrl)
	s.sent = nil
	s.direct = nil
	s.sentSig = make(chan struct{}, 16)

	waiter, err := confirm.NewWaiter(&confirm.Config{
		Clock:       s.clock,
		IDGenerator: idgen.NewSequential("confirm"),
	})
	s.Require().NoError(err)

	s.handler, err = chat.NewHandler(&chat.HandlerConfig{
		CharacterService:  s.mockCharacters,
		InitiativeService: s.mockInitiative,
		DiceService:       s.mockDice,
		Waiter:            waiter,
		Responder:         s.mockResponder,
	})
	s.Require().NoError(err)

	s.mockResponder.EXPECT().Send(gomock.Any(), "chan1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, text string) error {
			s.mu.Lock()
			s.sent = append(s.sent, text)
			s.mu.Unlock()
			s.sentSig <- struct{}{}
			return nil
		}).AnyTimes()
	s.mockResponder.EXPECT().SendDirect(gomock.Any(), "p1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, text string) error {
			s.mu.Lock()
			s.direct = append(s.direct, text)
			s.mu.Unlock()
			return nil
		}).AnyTimes()
}

func (s *HandlerTestSuite) TearDownTest() {
	s.handler.Wait()
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) handle(content string, mentions ...chat.User) {
	s.handleAs(chat.User{ID: "p1", Name: "Alice"}, content, mentions...)
}

func (s *HandlerTestSuite) handleAs(author chat.User, content string, mentions ...chat.User) {
	err := s.handler.Handle(s.ctx, &chat.Message{
		AuthorID:   author.ID,
		AuthorName: author.Name,
		ChannelID:  "chan1",
		Content:    content,
		Mentions:   mentions,
	})
	s.Require().NoError(err)
}

// lastSent returns the most recent channel reply
func (s *HandlerTestSuite) lastSent() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Require().NotEmpty(s.sent, "no reply was sent")
	return s.sent[len(s.sent)-1]
}

func (s *HandlerTestSuite) waitSent() {
	select {
	case <-s.sentSig:
	case <-time.After(time.Second):
		s.FailNow("timed out waiting for a reply")
	}
}

func notRegistered() error {
	return errors.NotFound("player is not registered").
		WithMeta(errors.MetaReason, errors.ReasonNotRegistered)
}

func (s *HandlerTestSuite) TestNewHandlerValidates() {
	_, err := chat.NewHandler(&chat.HandlerConfig{})
	s.Require().Error(err)
	for _, field := range []string{"CharacterService", "InitiativeService", "DiceService", "Waiter", "Responder"} {
		s.Contains(err.Error(), field)
	}
}

func (s *HandlerTestSuite) TestIgnoresOtherMessages() {
	s.handle("hello there")
	s.handle("pd.")
	s.handle("pd.dance now")
	s.Empty(s.sent)
}

func (s *HandlerTestSuite) TestPrefixIsCaseInsensitive() {
	s.mockDice.EXPECT().
		Roll(gomock.Any(), &dice.RollInput{PlayerID: "p1", Notation: "d20"}).
		Return(&dice.RollOutput{Rendered: "**Roll:** `1d20`"}, nil)

	s.handle("  PD.ROLL d20")
	s.Equal("**Alice rolled:**\n**Roll:** `1d20`", s.lastSent())
}

func (s *HandlerTestSuite) TestHelp() {
	s.handle("pd.help")
	s.Contains(s.lastSent(), "`pd.init_clear`")
}

func (s *HandlerTestSuite) TestRegister() {
	s.mockCharacters.EXPECT().
		Register(gomock.Any(), &character.RegisterInput{PlayerID: "p1", Name: "Alice"}).
		Return(&character.RegisterOutput{Profile: entities.NewProfile("Alice")}, nil)
	s.handle("pd.register")
	s.Contains(s.lastSent(), "Welcome, Alice")

	s.mockCharacters.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, errors.AlreadyExists("player is already registered"))
	s.handle("pd.register")
	s.Equal("✅ You are already registered!", s.lastSent())
}

func (s *HandlerTestSuite) TestNotRegisteredHint() {
	s.mockCharacters.EXPECT().
		GetHP(gomock.Any(), &character.GetHPInput{PlayerID: "p1"}).
		Return(nil, notRegistered())

	s.handle("pd.hp")
	s.Equal("⚠️ You are not registered. Use `pd.register` first.", s.lastSent())
}

func (s *HandlerTestSuite) TestHP() {
	s.mockCharacters.EXPECT().
		GetHP(gomock.Any(), gomock.Any()).
		Return(&character.GetHPOutput{Current: 5, Max: 10}, nil)
	s.handle("pd.hp")
	s.Contains(s.lastSent(), "**5 / 10**")
	s.Contains(s.lastSent(), "█████░░░░░")

	s.mockCharacters.EXPECT().
		SetHPMax(gomock.Any(), &character.SetHPMaxInput{PlayerID: "p1", Max: 20}).
		Return(&character.SetHPMaxOutput{Current: 20, Max: 20}, nil)
	s.handle("pd.hp SET 20")
	s.Contains(s.lastSent(), "set to **20**")

	s.mockCharacters.EXPECT().
		AdjustHP(gomock.Any(), &character.AdjustHPInput{PlayerID: "p1", Delta: -25}).
		Return(&character.AdjustHPOutput{Current: 0, Max: 20, Delta: -20}, nil)
	s.handle("pd.hp - 25")
	s.Contains(s.lastSent(), "took **20** damage")
	s.Contains(s.lastSent(), "**0 / 20**")

	s.mockCharacters.EXPECT().
		AdjustHP(gomock.Any(), &character.AdjustHPInput{PlayerID: "p1", Delta: 3}).
		Return(&character.AdjustHPOutput{Current: 3, Max: 20, Delta: 3}, nil)
	s.handle("pd.hp +3")
	s.Contains(s.lastSent(), "healed **3**")

	s.handle("pd.hp lots")
	s.True(strings.HasPrefix(s.lastSent(), "❌ invalid HP command"))
}

func (s *HandlerTestSuite) TestGear() {
	s.mockCharacters.EXPECT().
		AdjustInventory(gomock.Any(), &character.AdjustInventoryInput{
			PlayerID: "p1", Action: character.ActionAdd, Quantity: 3, Item: "potion",
		}).
		Return(&character.AdjustInventoryOutput{
			Action: character.ActionAdd, Item: "Potion", Quantity: 3, Remaining: 3,
		}, nil)
	s.handle("pd.gear +3 potion")
	s.Equal("✅ Added `3 Potion`. New total: `3`.", s.lastSent())

	s.mockCharacters.EXPECT().
		AdjustInventory(gomock.Any(), &character.AdjustInventoryInput{
			PlayerID: "p1", Action: character.ActionRemove, Quantity: 1, Item: "long sword",
		}).
		Return(nil, errors.FailedPrecondition("not enough Long sword (have 0)").
			WithMeta(errors.MetaReason, errors.ReasonInsufficientQuantity))
	s.handle("pd.gear -long sword")
	s.Equal("🤔 not enough Long sword (have 0)", s.lastSent())

	s.mockCharacters.EXPECT().
		GetInventory(gomock.Any(), gomock.Any()).
		Return(&character.GetInventoryOutput{Inventory: map[string]int{"Rope": 1, "Arrow": 20}}, nil)
	s.handle("pd.gear")
	s.Equal("🎒 **Inventory of Alice**\n**Arrow**: `x20`\n**Rope**: `x1`", s.lastSent())

	s.handle("pd.gear +0 rope")
	s.Equal("❌ quantity must be at least 1", s.lastSent())
}

func (s *HandlerTestSuite) TestMoney() {
	bob := chat.User{ID: "p2", Name: "Bob"}

	s.mockCharacters.EXPECT().
		GetMoney(gomock.Any(), &character.GetMoneyInput{PlayerID: "p2"}).
		Return(&character.GetMoneyOutput{Name: "bob", Balance: 12}, nil)
	s.handle("pd.money <@p2>", bob)
	s.Equal("💰 **Bob** has **12** coins.", s.lastSent())

	s.mockCharacters.EXPECT().
		GetMoney(gomock.Any(), &character.GetMoneyInput{PlayerID: "p2"}).
		Return(nil, notRegistered())
	s.handle("pd.money <@p2>", bob)
	s.Equal("⚠️ Bob is not registered.", s.lastSent())

	s.mockCharacters.EXPECT().
		AddMoney(gomock.Any(), &character.AddMoneyInput{PlayerID: "p1", Amount: 50}).
		Return(&character.AddMoneyOutput{Balance: 50}, nil)
	s.handle("pd.add_money 50")
	s.Contains(s.lastSent(), "new balance is **50**")

	s.mockCharacters.EXPECT().
		SpendMoney(gomock.Any(), &character.SpendMoneyInput{PlayerID: "p1", Amount: 80}).
		Return(nil, errors.FailedPrecondition("insufficient funds (balance 50)").
			WithMeta(errors.MetaReason, errors.ReasonInsufficientFunds))
	s.handle("pd.pop_money 80")
	s.Equal("🤔 insufficient funds (balance 50)", s.lastSent())

	s.handle("pd.add_money lots")
	s.Equal("❌ invalid format, use `pd.add_money <amount>`", s.lastSent())
}

func (s *HandlerTestSuite) TestAttributes() {
	s.mockCharacters.EXPECT().
		UpsertAttributes(gomock.Any(), &character.UpsertAttributesInput{
			PlayerID: "p1",
			Pairs:    []character.AttributePair{{Name: "for", Value: 10}, {Name: "des", Value: -1}},
		}).
		Return(&character.UpsertAttributesOutput{
			Updated: []character.AttributePair{{Name: "for", Value: 10}, {Name: "des", Value: -1}},
		}, nil)
	s.handle("pd.attribute_push FOR=10, des=-1")
	s.Equal("✅ Attributes updated: `FOR`=`10`, `DES`=`-1`", s.lastSent())

	s.mockCharacters.EXPECT().
		RemoveAttributes(gomock.Any(), &character.RemoveAttributesInput{PlayerID: "p1", Names: []string{"xyz"}}).
		Return(nil, errors.NotFound("no matching attributes"))
	s.handle("pd.attribute_remove xyz")
	s.Equal("🤔 None of the listed attributes were found on your sheet.", s.lastSent())

	s.mockCharacters.EXPECT().
		GetAttributes(gomock.Any(), &character.GetAttributesInput{PlayerID: "p1"}).
		Return(&character.GetAttributesOutput{Attributes: map[string]int{"for": 10}}, nil)
	s.handle("pd.attribute")
	s.Equal("📜 **Attributes of Alice**\n**FOR:** 10", s.lastSent())
}

func (s *HandlerTestSuite) TestSecretRollRepliesPrivately() {
	s.mockDice.EXPECT().
		Roll(gomock.Any(), &dice.RollInput{PlayerID: "p1", Notation: "1d20", Secret: true}).
		Return(&dice.RollOutput{Rendered: "total 7", Secret: true}, nil)
	s.handle("pd.sroll 1d20")

	s.mockDice.EXPECT().
		Roll(gomock.Any(), gomock.Any()).
		Return(nil, errors.InvalidArgument(enginedice.ErrInvalidFormat))
	s.handle("pd.sroll banana")

	s.Empty(s.sent, "nothing is posted to the channel")
	s.Equal([]string{
		"**Your secret roll:**\ntotal 7",
		"⚠️ Error in your secret roll: invalid format",
	}, s.direct)
}

func (s *HandlerTestSuite) TestRollErrors() {
	s.mockDice.EXPECT().
		Roll(gomock.Any(), gomock.Any()).
		Return(nil, errors.ResourceExhausted("limits exceeded (max: 20#100d1000)"))
	s.handle("pd.roll 21#d6")
	s.Equal("❌ limits exceeded (max: 20#100d1000)", s.lastSent())
}

func (s *HandlerTestSuite) TestStorageFailureIsReported() {
	s.mockCharacters.EXPECT().
		AddMoney(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("failed to save data, the change was not applied").
			WithMeta(errors.MetaReason, errors.ReasonStorage))
	s.handle("pd.add_money 5")
	s.Equal("💾 failed to save data, the change was not applied", s.lastSent())
}

func (s *HandlerTestSuite) TestInitiative() {
	s.mockInitiative.EXPECT().
		RollInitiative(gomock.Any(), &initiative.RollInitiativeInput{
			RoomID: "chan1", PlayerID: "p1", Name: "Alice", Notation: "1d20+5",
		}).
		Return(&initiative.RollInitiativeOutput{Total: 17, Rendered: "line1\nline2"}, nil)
	s.handle("pd.init 1d20+5")
	s.Equal("✅ **Alice** joined the initiative with **17**.\n> line1\n> line2", s.lastSent())

	s.mockInitiative.EXPECT().
		ListInitiative(gomock.Any(), &initiative.ListInitiativeInput{RoomID: "chan1"}).
		Return(&initiative.ListInitiativeOutput{Entries: []entities.RankedParticipant{
			{PlayerID: "p1", Name: "Alice", Score: 17},
			{PlayerID: "p2", Name: "Bob", Score: 9},
		}}, nil)
	s.handle("pd.init_list")
	s.Equal("⚔️ **Initiative Order** ⚔️\n**1.** Alice - `17`\n**2.** Bob - `9`", s.lastSent())

	s.mockInitiative.EXPECT().
		ListInitiative(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("initiative is empty"))
	s.handle("pd.init_list")
	s.Contains(s.lastSent(), "The initiative list is empty")

	s.mockInitiative.EXPECT().
		ClearInitiative(gomock.Any(), &initiative.ClearInitiativeInput{RoomID: "chan1"}).
		Return(&initiative.ClearInitiativeOutput{Removed: 2}, nil)
	s.handle("pd.init_clear")
	s.Equal("✅ The initiative list was cleared!", s.lastSent())
}

func (s *HandlerTestSuite) expectRemovalPrompt() {
	s.mockCharacters.EXPECT().
		GetProfile(gomock.Any(), &character.GetProfileInput{PlayerID: "p1"}).
		Return(&character.GetProfileOutput{Profile: entities.NewProfile("Alice")}, nil)
	s.handle("pd.register remover")
	s.waitSent()
	s.Contains(s.lastSent(), "irreversible")
}

func (s *HandlerTestSuite) TestRemovalConfirmed() {
	s.expectRemovalPrompt()

	s.mockCharacters.EXPECT().
		Unregister(gomock.Any(), &character.UnregisterInput{PlayerID: "p1"}).
		Return(&character.UnregisterOutput{}, nil)
	s.handle("Sim")
	s.handler.Wait()
	s.waitSent()
	s.Equal("✅ Your data was removed.", s.lastSent())
}

func (s *HandlerTestSuite) TestRemovalDeclined() {
	s.expectRemovalPrompt()

	// the answer is consumed by the confirmation, not run as a command
	s.handle("pd.help")
	s.handler.Wait()
	s.waitSent()
	s.Equal("❌ Removal canceled.", s.lastSent())
}

func (s *HandlerTestSuite) TestOtherPlayersNotBlockedByPendingRemoval() {
	s.expectRemovalPrompt()

	s.mockCharacters.EXPECT().
		GetMoney(gomock.Any(), &character.GetMoneyInput{PlayerID: "p2"}).
		Return(&character.GetMoneyOutput{Name: "bob", Balance: 7}, nil)
	s.handleAs(chat.User{ID: "p2", Name: "Bob"}, "pd.money")
	s.waitSent()
	s.Equal("💰 **Bob** has **7** coins.", s.lastSent())

	s.mockCharacters.EXPECT().
		Unregister(gomock.Any(), &character.UnregisterInput{PlayerID: "p1"}).
		Return(&character.UnregisterOutput{}, nil)
	s.handle("sim")
	s.handler.Wait()
	s.waitSent()
	s.Equal("✅ Your data was removed.", s.lastSent())
}

func (s *HandlerTestSuite) TestGearQuantityTooLarge() {
	s.handle("pd.gear +99999999999999999999 arrow")
	s.Equal("❌ quantity is too large", s.lastSent())
}

func (s *HandlerTestSuite) TestRemovalTimesOut() {
	s.expectRemovalPrompt()

	s.clock.fire <- time.Time{}
	s.handler.Wait()
	s.waitSent()
	s.Equal("⏰ Time is up. The removal was canceled.", s.lastSent())
}

func (s *HandlerTestSuite) TestRemovalWhenNotRegistered() {
	s.mockCharacters.EXPECT().
		GetProfile(gomock.Any(), gomock.Any()).
		Return(nil, notRegistered())
	s.handle("pd.register remover")
	s.Equal("🤔 You are not registered, so there is nothing to remove.", s.lastSent())
}
