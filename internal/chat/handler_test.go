package chat

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"styleup-backend/internal/llm"
)

func newTestRouter(exp llm.Explainer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := NewService(stubProfiles{"u1": {Name: "Ada"}}, exp)
	NewHandler(svc).RegisterRoutes(r.Group("/api"))
	return r
}

func TestChatHandlerDecodesLooseOutfit(t *testing.T) {
	exp := &stubExplainer{text: "Nice pick."}
	r := newTestRouter(exp)

	body := `{"user_id":"u1","outfit":{"id":"w1","category":"shirt","color":"blue","comfort":"8","score":"0.51","explanation":"high comfort"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat-styleup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	got := exp.got.Outfit
	if got.Category != "shirt" || got.Color != "blue" || got.Comfort != 8 || got.Score != 0.51 || got.Explanation != "high comfort" {
		t.Fatalf("unexpected outfit passed to explainer: %+v", got)
	}
}

func TestChatHandlerMalformedOutfitUsesTemplate(t *testing.T) {
	r := newTestRouter(llm.TemplateExplainer{})

	req := httptest.NewRequest(http.MethodPost, "/api/chat-styleup", strings.NewReader(`{"user_id":"u1","outfit":["shirt"]}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var payload struct {
		Explanation string `json:"explanation"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(payload.Explanation, "This outfit is recommended because") {
		t.Fatalf("unexpected explanation %q", payload.Explanation)
	}
}
