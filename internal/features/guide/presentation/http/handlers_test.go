package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"

	configdomain "iri-guide/backend/internal/features/config/domain"
	"iri-guide/backend/internal/features/guide/application"
	shared "iri-guide/backend/internal/features/shared/domain"
	"iri-guide/backend/internal/infrastructure"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockAIClient struct {
	completeFunc func(ctx context.Context, req infrastructure.CompletionRequest) (string, error)
	prompts      []string
}

func (m *mockAIClient) Complete(ctx context.Context, req infrastructure.CompletionRequest) (string, error) {
	m.prompts = append(m.prompts, req.Messages[0].Content)
	return m.completeFunc(ctx, req)
}

func failingClient() *mockAIClient {
	return &mockAIClient{completeFunc: func(ctx context.Context, req infrastructure.CompletionRequest) (string, error) {
		return "", errors.New("connection refused")
	}}
}

func newRouter(client infrastructure.AIClient, strict bool) *gin.Engine {
	h := NewGuideHandler(application.NewGuideService(client, configdomain.DefaultModelConfig().Guide), strict)
	r := gin.New()
	r.Any("/generate-guide", h.GenerateGuideHandler)
	return r
}

func do(r http.Handler, method, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, "/generate-guide", strings.NewReader(body)))
	return w
}

const validBody = `{
  "context": {"platform": "Web", "service": "브랜드 홍보", "keyword": "따뜻한", "primaryColor": "#ff6600"},
  "knowledgeBase": {
    "guidelines": {"web": {"grid": 12}},
    "iri_colors": {"warm": {"keywords": ["따뜻한"]}}
  }
}`

func TestGenerateGuideHandler_MethodNotAllowed(t *testing.T) {
	RegisterTestingT(t)
	r := newRouter(failingClient(), false)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodOptions} {
		w := do(r, method, "")
		Expect(w.Code).To(Equal(http.StatusMethodNotAllowed))
		Expect(w.Body.String()).To(MatchJSON(`{"message":"Method Not Allowed"}`))
		Expect(w.Header().Get("Access-Control-Allow-Origin")).To(BeEmpty())
	}
}

func TestGenerateGuideHandler_Success(t *testing.T) {
	RegisterTestingT(t)
	client := &mockAIClient{completeFunc: func(ctx context.Context, req infrastructure.CompletionRequest) (string, error) {
		return `{"colorSystem":{"primary":{"main":"#ff6600","light":"#ff9944","dark":"#cc5200"}},"typography":{"bodySize":"16px"},"accessibility":{"contrastRatio":"4.6:1"}}`, nil
	}}
	r := newRouter(client, false)

	w := do(r, http.MethodPost, validBody)

	Expect(w.Code).To(Equal(http.StatusOK))
	Expect(w.Header().Get("Content-Type")).To(HavePrefix("application/json"))
	Expect(w.Header().Get(shared.HeaderSource)).To(Equal("ai"))
	Expect(w.Body.String()).To(MatchJSON(`{"colorSystem":{"primary":{"main":"#ff6600","light":"#ff9944","dark":"#cc5200"}},"typography":{"bodySize":"16px"},"accessibility":{"contrastRatio":"4.6:1"}}`))
	Expect(client.prompts[0]).To(ContainSubstring("Color Group: warm"))
	Expect(client.prompts[0]).To(ContainSubstring(`{"grid":12}`))
}

func TestGenerateGuideHandler_UpstreamFailureServesFallback(t *testing.T) {
	RegisterTestingT(t)
	r := newRouter(failingClient(), false)

	w := do(r, http.MethodPost, validBody)

	Expect(w.Code).To(Equal(http.StatusOK))
	Expect(w.Header().Get(shared.HeaderSource)).To(Equal("fallback"))

	var got map[string]any
	Expect(json.Unmarshal(w.Body.Bytes(), &got)).To(Succeed())
	Expect(got).To(HaveKey("colorSystem"))
	Expect(got).To(HaveKey("typography"))
	Expect(got).To(HaveKey("accessibility"))
	Expect(got["colorSystem"].(map[string]any)["primary"].(map[string]any)["main"]).To(Equal("#ff6600"))
}

func TestGenerateGuideHandler_UnparseableBodyServesDefaultFallback(t *testing.T) {
	RegisterTestingT(t)
	client := failingClient()
	r := newRouter(client, false)

	w := do(r, http.MethodPost, `{"context": `)

	Expect(w.Code).To(Equal(http.StatusOK))
	Expect(w.Header().Get(shared.HeaderSource)).To(Equal("fallback"))
	Expect(w.Body.String()).To(ContainSubstring(`"main":"#6666ff"`))
	Expect(client.prompts).To(BeEmpty())
}

func TestGenerateGuideHandler_MistypedContextFieldReachesModel(t *testing.T) {
	RegisterTestingT(t)
	client := failingClient()
	r := newRouter(client, false)

	w := do(r, http.MethodPost, `{"context": {"platform": 2, "service": "학습", "keyword": "따뜻한", "primaryColor": "#ff6600"}, "knowledgeBase": {"guidelines": {}}}`)

	Expect(w.Code).To(Equal(http.StatusOK))
	Expect(client.prompts).To(HaveLen(1))
	Expect(client.prompts[0]).To(ContainSubstring("Platform: 2"))
	Expect(w.Body.String()).To(ContainSubstring(`"main":"#ff6600"`))
}

func TestGenerateGuideHandler_MalformedKnowledgeBaseKeepsPrimaryColor(t *testing.T) {
	RegisterTestingT(t)
	client := failingClient()
	r := newRouter(client, false)

	w := do(r, http.MethodPost, `{"context": {"platform": "web", "primaryColor": "#123456"}, "knowledgeBase": {"guidelines": {}, "iri_colors": []}}`)

	Expect(w.Code).To(Equal(http.StatusOK))
	Expect(w.Header().Get(shared.HeaderSource)).To(Equal("fallback"))
	Expect(w.Body.String()).To(ContainSubstring(`"main":"#123456"`))
	Expect(client.prompts).To(BeEmpty())
}

func TestGenerateGuideHandler_Idempotent(t *testing.T) {
	RegisterTestingT(t)
	client := &mockAIClient{completeFunc: func(ctx context.Context, req infrastructure.CompletionRequest) (string, error) {
		return "```json\n{\"colorSystem\": {}, \"typography\": {}, \"accessibility\": {}}\n```", nil
	}}
	r := newRouter(client, false)

	first := do(r, http.MethodPost, validBody)
	second := do(r, http.MethodPost, validBody)
	Expect(second.Body.Bytes()).To(Equal(first.Body.Bytes()))
}

func TestGenerateGuideHandler_StrictValidation(t *testing.T) {
	RegisterTestingT(t)
	client := failingClient()
	r := newRouter(client, true)

	w := do(r, http.MethodPost, `{"context": {"platform": "web"}, "knowledgeBase": {}}`)
	Expect(w.Code).To(Equal(http.StatusBadRequest))

	var got struct {
		Error  string   `json:"error"`
		Fields []string `json:"fields"`
	}
	Expect(json.Unmarshal(w.Body.Bytes(), &got)).To(Succeed())
	Expect(got.Fields).To(ConsistOf("context.service", "context.keyword", "knowledgeBase.guidelines"))

	w = do(r, http.MethodPost, `not json`)
	Expect(w.Code).To(Equal(http.StatusBadRequest))
	Expect(w.Body.String()).To(MatchJSON(`{"error":"request body is not valid JSON"}`))
	Expect(client.prompts).To(BeEmpty())

	w = do(r, http.MethodPost, validBody)
	Expect(w.Code).To(Equal(http.StatusOK))
}
