package httptransport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"elysium-casino/internal/config"
)

func testRouter() http.Handler {
	return NewRouter(config.AppConfig{
		Table: config.TableConfig{ShoeDecks: 6, StartingBalance: 10000, MinBet: 100},
	})
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var out map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("response not json: %v: %s", err, rec.Body.String())
		}
	}
	return rec, out
}

func TestHealthz(t *testing.T) {
	rec, out := doJSON(t, testRouter(), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if out["ok"] != true {
		t.Fatalf("body = %v", out)
	}
}

func TestBlackjackResolveNatural(t *testing.T) {
	body := `{"player":{"cards":["As","Kd"],"bet":1000},"dealer":{"cards":["9c","7d"]}}`
	rec, out := doJSON(t, testRouter(), http.MethodPost, "/api/blackjack/resolve", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %v", rec.Code, out)
	}
	player := out["player"].(map[string]any)
	if player["state"] != "blackjack" {
		t.Fatalf("state = %v, want blackjack", player["state"])
	}
	if player["bet"].(float64) != 2500 {
		t.Fatalf("bet = %v, want 2500", player["bet"])
	}
}

func TestBlackjackResolveRejectsBadInput(t *testing.T) {
	r := testRouter()

	rec, out := doJSON(t, r, http.MethodPost, "/api/blackjack/resolve", `{"player":`)
	if rec.Code != http.StatusBadRequest || out["error"] != "invalid_json" {
		t.Fatalf("truncated body: status=%d body=%v", rec.Code, out)
	}

	rec, out = doJSON(t, r, http.MethodPost, "/api/blackjack/resolve",
		`{"player":{"cards":["As","Xx"],"bet":100},"dealer":{"cards":["9c","7d"]}}`)
	if rec.Code != http.StatusBadRequest || out["error"] != "invalid_request" {
		t.Fatalf("bad card: status=%d body=%v", rec.Code, out)
	}

	rec, out = doJSON(t, r, http.MethodPost, "/api/blackjack/resolve",
		`{"player":{"cards":["As"],"bet":100},"dealer":{"cards":["9c","7d"]}}`)
	if rec.Code != http.StatusBadRequest || out["error"] != "invalid_request" {
		t.Fatalf("one card: status=%d body=%v", rec.Code, out)
	}
}

func TestBaccaratRoundDealsAndSettles(t *testing.T) {
	body := `{"bets":[{"target":"player","amount":500},{"target":"tie","amount":100}]}`
	rec, out := doJSON(t, testRouter(), http.MethodPost, "/api/baccarat/round", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %v", rec.Code, out)
	}
	playerCards := out["player_cards"].([]any)
	bankerCards := out["banker_cards"].([]any)
	if len(playerCards) < 2 || len(playerCards) > 3 || len(bankerCards) < 2 || len(bankerCards) > 3 {
		t.Fatalf("card counts = %d/%d", len(playerCards), len(bankerCards))
	}
	switch out["winner"] {
	case "player", "banker", "tie":
	default:
		t.Fatalf("winner = %v", out["winner"])
	}
	bets := out["bets"].([]any)
	if len(bets) != 2 {
		t.Fatalf("bets = %v", bets)
	}
}

func TestBaccaratRoundRejectsBadBets(t *testing.T) {
	r := testRouter()

	rec, out := doJSON(t, r, http.MethodPost, "/api/baccarat/round",
		`{"bets":[{"target":"dragon","amount":100}]}`)
	if rec.Code != http.StatusBadRequest || out["error"] != "invalid_request" {
		t.Fatalf("bad target: status=%d body=%v", rec.Code, out)
	}

	rec, out = doJSON(t, r, http.MethodPost, "/api/baccarat/round",
		`{"bets":[{"target":"player","amount":0}]}`)
	if rec.Code != http.StatusBadRequest || out["error"] != "invalid_request" {
		t.Fatalf("zero amount: status=%d body=%v", rec.Code, out)
	}
}

func TestUTHSettleWorkedHand(t *testing.T) {
	body := `{
		"hole":["Ah","6h"],
		"dealer_hole":["Qd","7s"],
		"community":["Kh","9h","4h","Qc","2s"],
		"wagers":{"ante":200,"blind":100,"play":400}
	}`
	rec, out := doJSON(t, testRouter(), http.MethodPost, "/api/uth/settle", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %v", rec.Code, out)
	}
	if out["state"] != "won" {
		t.Fatalf("state = %v", out["state"])
	}
	player := out["player"].(map[string]any)
	if player["category"] != "flush" {
		t.Fatalf("player category = %v", player["category"])
	}
	wagers := out["wagers"].(map[string]any)
	if wagers["ante"].(float64) != 400 || wagers["blind"].(float64) != 250 || wagers["play"].(float64) != 800 {
		t.Fatalf("wagers = %v", wagers)
	}
}

func TestUTHSettleRejectsBadShapes(t *testing.T) {
	r := testRouter()

	rec, out := doJSON(t, r, http.MethodPost, "/api/uth/settle",
		`{"hole":["Ah"],"dealer_hole":["Qd","7s"],"community":["Kh","9h","4h","Qc","2s"],"wagers":{"ante":100}}`)
	if rec.Code != http.StatusBadRequest || out["error"] != "invalid_request" {
		t.Fatalf("short hole: status=%d body=%v", rec.Code, out)
	}

	rec, out = doJSON(t, r, http.MethodPost, "/api/uth/settle",
		`{"hole":["Ah","6h"],"dealer_hole":["Qd","7s"],"community":["Kh","9h","4h","Qc","2s"],"wagers":{"ante":-1}}`)
	if rec.Code != http.StatusBadRequest || out["error"] != "invalid_request" {
		t.Fatalf("negative wager: status=%d body=%v", rec.Code, out)
	}
}
