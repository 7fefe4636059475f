package httptransport

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"elysium-casino/internal/baccarat"
	"elysium-casino/internal/blackjack"
	"elysium-casino/internal/cards"
	"elysium-casino/internal/config"
	"elysium-casino/internal/uth"
)

// GameHandlers exposes the three settlement engines over JSON. Every
// endpoint is stateless: the caller supplies the cards and wagers, the
// response carries the settled result.
type GameHandlers struct {
	table config.TableConfig
}

func NewGameHandlers(table config.TableConfig) *GameHandlers {
	return &GameHandlers{table: table}
}

func (h *GameHandlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}

type blackjackHandIn struct {
	Cards        []string `json:"cards"`
	Bet          int64    `json:"bet"`
	InsuranceBet int64    `json:"insurance_bet"`
	FromSplit    bool     `json:"from_split"`
	Insured      bool     `json:"insured"`
}

type blackjackResolveRequest struct {
	Player blackjackHandIn `json:"player"`
	Dealer struct {
		Cards []string `json:"cards"`
	} `json:"dealer"`
}

type blackjackHandOut struct {
	Cards        []string        `json:"cards"`
	Value        int             `json:"value"`
	Bet          int64           `json:"bet"`
	InsuranceBet int64           `json:"insurance_bet"`
	State        blackjack.State `json:"state"`
}

func (h *GameHandlers) BlackjackResolve() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req blackjackResolveRequest
		if err := DecodeJSON(r, &req); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		playerCards, err := cards.ParseAll(req.Player.Cards)
		if err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		dealerCards, err := cards.ParseAll(req.Dealer.Cards)
		if err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		if len(playerCards) < 2 || len(dealerCards) < 2 || req.Player.Bet < 0 || req.Player.InsuranceBet < 0 {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}

		player := blackjack.Hand{
			Cards:        playerCards,
			Bet:          req.Player.Bet,
			InsuranceBet: req.Player.InsuranceBet,
			FromSplit:    req.Player.FromSplit,
		}
		if req.Player.Insured {
			player.State = blackjack.StateInsured
		}
		dealer := blackjack.Hand{Cards: dealerCards}

		settled := blackjack.Resolve(player, dealer)
		log.Info().Str("state", string(settled.State)).Int64("bet", settled.Bet).Msg("blackjack resolved")

		resp := map[string]any{
			"player": blackjackHandOut{
				Cards:        cards.Strings(settled.Cards),
				Value:        settled.Value(),
				Bet:          settled.Bet,
				InsuranceBet: settled.InsuranceBet,
				State:        settled.State,
			},
			"dealer": map[string]any{
				"cards": cards.Strings(dealer.Cards),
				"value": dealer.Value(),
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

type baccaratBetIn struct {
	Target baccarat.BetTarget `json:"target"`
	Amount int64              `json:"amount"`
}

type baccaratRoundRequest struct {
	Bets []baccaratBetIn `json:"bets"`
}

type baccaratBetOut struct {
	Target baccarat.BetTarget `json:"target"`
	Amount int64              `json:"amount"`
	Payout int64              `json:"payout"`
}

func (h *GameHandlers) BaccaratRound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req baccaratRoundRequest
		if err := DecodeJSON(r, &req); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		for _, b := range req.Bets {
			switch b.Target {
			case baccarat.BetPlayer, baccarat.BetBanker, baccarat.BetTie:
			default:
				WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
				return
			}
			if b.Amount <= 0 {
				WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
				return
			}
		}

		shoe := cards.NewShoe(h.table.ShoeDecks)
		shoe.Shuffle()
		round := baccarat.PlayRound(shoe.Draw)

		bets := make([]baccaratBetOut, 0, len(req.Bets))
		var total int64
		for _, b := range req.Bets {
			payout := baccarat.Settle(baccarat.Bet{Target: b.Target, Amount: b.Amount}, round.Winner)
			total += payout
			bets = append(bets, baccaratBetOut{Target: b.Target, Amount: b.Amount, Payout: payout})
		}
		log.Info().Str("winner", string(round.Winner)).Int64("total_payout", total).Msg("baccarat round settled")

		resp := map[string]any{
			"player_cards": cards.Strings(round.Player.Cards),
			"banker_cards": cards.Strings(round.Banker.Cards),
			"player_total": round.Player.Total(),
			"banker_total": round.Banker.Total(),
			"winner":       round.Winner,
			"bets":         bets,
			"total_payout": total,
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

type uthWagersIn struct {
	Ante  int64 `json:"ante"`
	Blind int64 `json:"blind"`
	Play  int64 `json:"play"`
	Trips int64 `json:"trips"`
}

type uthSettleRequest struct {
	Hole       []string    `json:"hole"`
	DealerHole []string    `json:"dealer_hole"`
	Community  []string    `json:"community"`
	Wagers     uthWagersIn `json:"wagers"`
	Folded     bool        `json:"folded"`
}

func (h *GameHandlers) UTHSettle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req uthSettleRequest
		if err := DecodeJSON(r, &req); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		hole, err := cards.ParseAll(req.Hole)
		if err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		dealerHole, err := cards.ParseAll(req.DealerHole)
		if err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		community, err := cards.ParseAll(req.Community)
		if err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		if len(hole) != 2 || len(dealerHole) != 2 || len(community) != 5 {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		if req.Wagers.Ante < 0 || req.Wagers.Blind < 0 || req.Wagers.Play < 0 || req.Wagers.Trips < 0 {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}

		hand := uth.Hand{
			Hole: hole,
			Wagers: uth.Wagers{
				Ante:  req.Wagers.Ante,
				Blind: req.Wagers.Blind,
				Play:  req.Wagers.Play,
				Trips: req.Wagers.Trips,
			},
			Stage:  uth.StageFinal,
			Folded: req.Folded,
		}
		res := uth.ProcessResults(hand, dealerHole, community)
		log.Info().Str("state", string(res.Hand.State)).
			Str("player_category", res.Player.Category.String()).
			Str("dealer_category", res.Dealer.Category.String()).
			Msg("uth hand settled")

		resp := map[string]any{
			"state": res.Hand.State,
			"wagers": uthWagersIn{
				Ante:  res.Hand.Wagers.Ante,
				Blind: res.Hand.Wagers.Blind,
				Play:  res.Hand.Wagers.Play,
				Trips: res.Hand.Wagers.Trips,
			},
			"player": map[string]any{
				"category": res.Player.Category.String(),
				"cards":    cards.Strings(res.Player.Cards),
			},
			"dealer": map[string]any{
				"category": res.Dealer.Category.String(),
				"cards":    cards.Strings(res.Dealer.Cards),
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}
