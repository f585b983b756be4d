package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mensajeria_server/internal/dto/request"
	"mensajeria_server/internal/dto/respond"
	"mensajeria_server/pkg/errorx"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubContactService struct {
	contacts []respond.ContactRespond
	err      error
	added    [3]string
}

func (s *stubContactService) ListContacts(_ context.Context, _ string) ([]respond.ContactRespond, error) {
	return s.contacts, s.err
}

func (s *stubContactService) AddContact(_ context.Context, owner, contact, name string) (bool, error) {
	s.added = [3]string{owner, contact, name}
	return s.err == nil, s.err
}

type stubMessageService struct {
	rsp      *respond.SendMessageRespond
	received []respond.ReceivedMessageRespond
	err      error
}

func (s *stubMessageService) SendMessage(_ context.Context, _, _, _ string) (*respond.SendMessageRespond, error) {
	return s.rsp, s.err
}

func (s *stubMessageService) ListReceivedMessages(_ context.Context, _ string) ([]respond.ReceivedMessageRespond, error) {
	return s.received, s.err
}

type stubHealthService struct{ err error }

func (s stubHealthService) Ping(context.Context) error { return s.err }

func serve(h gin.HandlerFunc, method, route, target, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Handle(method, route, h)
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFormatContacts(t *testing.T) {
	lines := FormatContacts([]respond.ContactRespond{
		{Alias: "lmunoz", DisplayName: "Luisa"},
		{Alias: "mgrau", DisplayName: "Miguel"},
	})
	assert.Equal(t, []string{"lmunoz: Luisa", "mgrau: Miguel"}, lines)
	assert.Empty(t, FormatContacts(nil))
}

func TestFormatReceivedKeepsZone(t *testing.T) {
	// 23:30 UTC-3 已是 UTC 的次日，格式化时不能换算
	sentAt := time.Date(2024, 3, 9, 23, 30, 0, 0, time.FixedZone("CLT", -3*3600))
	lines := FormatReceived([]respond.ReceivedMessageRespond{
		{SenderAlias: "cpaz", SenderDisplayName: "Christian", Body: "100% listo", SentAt: sentAt},
	})
	assert.Equal(t, []string{`Christian te escribió "100% listo" el 09/03/24.`}, lines)
}

func TestListContactsStoreFailure(t *testing.T) {
	h := NewContactHandler(&stubContactService{err: errorx.New(errorx.CodeDBError, "boom")})

	w := serve(h.ListContacts, http.MethodGet, "/contacts", "/contacts?ownerAlias=cpaz", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Error: error interno del servidor", w.Body.String())
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestAddContactStoreFailure(t *testing.T) {
	h := NewContactHandler(&stubContactService{err: errors.New("disk full")})

	w := serve(h.AddContact, http.MethodPost, "/contacts/:ownerAlias", "/contacts/cpaz",
		`{"contacto":"lmunoz","nombre":"Luisa"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{"error": "error interno del servidor"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "disk full")
}

func TestAddContactPassesFields(t *testing.T) {
	svc := &stubContactService{}
	h := NewContactHandler(svc)

	w := serve(h.AddContact, http.MethodPost, "/contacts/:ownerAlias", "/contacts/cpaz",
		`{"contacto":"lmunoz","nombre":"Luisa"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, [3]string{"cpaz", "lmunoz", "Luisa"}, svc.added)
}

func TestSendMessageEmptyFieldRejected(t *testing.T) {
	h := NewMessageHandler(&stubMessageService{})

	w := serve(h.SendMessage, http.MethodPost, "/messages", "/messages",
		`{"usuario":"cpaz","contacto":"lmunoz","mensaje":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Error: Faltan campos requeridos", w.Body.String())
}

func TestSendMessageStoreFailure(t *testing.T) {
	h := NewMessageHandler(&stubMessageService{err: errorx.New(errorx.CodeDBError, "boom")})

	w := serve(h.SendMessage, http.MethodPost, "/messages", "/messages",
		`{"usuario":"cpaz","contacto":"lmunoz","mensaje":"hola"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListReceivedEmpty(t *testing.T) {
	h := NewMessageHandler(&stubMessageService{})

	w := serve(h.ListReceived, http.MethodGet, "/messages", "/messages?ownerAlias=nadie", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestAliasParamOverride(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewMessageHandler(&stubMessageService{})
	r := gin.New()
	r.GET("/recibidos", WithAliasParam("mialias"), h.ListReceived)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recibidos?ownerAlias=cpaz", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Error: Se requiere el parámetro mialias", w.Body.String())
}

func TestHealthzFailure(t *testing.T) {
	h := NewHealthHandler(stubHealthService{err: errors.New("db down")})

	w := serve(h.Healthz, http.MethodGet, "/healthz", "/healthz", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestInitTrans(t *testing.T) {
	require.NoError(t, InitTrans("es"))
	require.NotNil(t, Trans)

	err := binding.Validator.ValidateStruct(&request.AddContactRequest{})
	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))

	fields := RemoveTopStruct(validationErrs.Translate(Trans))
	assert.Contains(t, fields, "contacto")
	assert.Contains(t, fields, "nombre")
}
