package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auroracraft.gg/aurora-web/internal/cart"
	"auroracraft.gg/aurora-web/internal/catalog"
	"auroracraft.gg/aurora-web/internal/rates"
	"auroracraft.gg/aurora-web/internal/webhook"
)

func captureWebhook(t *testing.T, status int) (*webhook.Client, *[]webhook.Message, *int) {
	t.Helper()
	var msgs []webhook.Message
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.NoError(t, r.ParseMultipartForm(8<<20))
		var m webhook.Message
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("payload_json")), &m))
		msgs = append(msgs, m)
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return webhook.NewClient(srv.URL), &msgs, &calls
}

func linesFor(t *testing.T, ids ...string) ([]cart.Line, int64) {
	t.Helper()
	c := cart.FromIDs(ids)
	return c.Lines(), c.Total()
}

func TestSubmitPaidOrder(t *testing.T) {
	client, msgs, _ := captureWebhook(t, http.StatusOK)
	s := &Submitter{Webhook: client}

	lines, total := linesFor(t, "rank_1", "key_miner")
	require.Greater(t, total, int64(0))

	d := Draft{
		IGN:     "Notch",
		Discord: "cadet#1234",
		Method:  MethodSTCPay,
		Proof:   &webhook.Attachment{Filename: "receipt.png", Data: []byte("png")},
		Quote:   rates.Quote{Rate: 13.5, Live: true},
	}
	res, err := s.Submit(context.Background(), d, lines, total)
	require.NoError(t, err)
	assert.False(t, res.Free)
	assert.NotEmpty(t, res.Ref)

	require.Len(t, *msgs, 1)
	m := (*msgs)[0]
	assert.Equal(t, "Aurora Store Bot", m.Username)
	require.Len(t, m.Embeds, 1)
	e := m.Embeds[0]
	assert.Equal(t, "🛒 New Transaction Submission", e.Title)
	assert.Equal(t, 16766720, e.Color)
	require.NotNil(t, e.Footer)
	assert.Contains(t, e.Footer.Text, "Guest Purchase • "+res.Ref)
	require.NotNil(t, e.Image)
	assert.Equal(t, "attachment://receipt.png", e.Image.URL)

	byName := map[string]string{}
	for _, f := range e.Fields {
		byName[f.Name] = f.Value
	}
	assert.Equal(t, "`Notch`", byName["👤 IGN"])
	assert.Equal(t, "STC PAY", byName["💳 Method"])
	assert.Contains(t, byName["💱 Transfer Amount"], "SAR")
	assert.Contains(t, byName["📈 Rate Applied"], "13.50 EGP")
	for _, ln := range lines {
		assert.Contains(t, byName["📦 Cart Items"], "• "+ln.Entry.Name)
	}
}

func TestSubmitFreeClaim(t *testing.T) {
	client, msgs, _ := captureWebhook(t, http.StatusOK)
	s := &Submitter{Webhook: client}

	var freeID string
	for _, e := range catalog.All() {
		if e.Free() {
			freeID = e.ID
			break
		}
	}
	require.NotEmpty(t, freeID)
	lines, total := linesFor(t, freeID)
	require.Zero(t, total)

	d := Draft{IGN: "Notch", Discord: "cadet#1234", Method: MethodSTCPay}
	res, err := s.Submit(context.Background(), d, lines, total)
	require.NoError(t, err)
	assert.True(t, res.Free)

	require.Len(t, *msgs, 1)
	e := (*msgs)[0].Embeds[0]
	assert.Equal(t, "🎁 New Free Rank Claim", e.Title)
	assert.Equal(t, 5566367, e.Color)
	require.NotNil(t, e.Image)
	assert.NotContains(t, e.Image.URL, "attachment://")
	require.NotNil(t, e.Footer)
	assert.Contains(t, e.Footer.Text, "Free Claim • "+res.Ref)

	byName := map[string]string{}
	for _, f := range e.Fields {
		byName[f.Name] = f.Value
	}
	assert.Equal(t, "FREE CLAIM", byName["💳 Method"])
	assert.Equal(t, "0 EGP", byName["💰 Total EGP"])
	_, hasTransfer := byName["💱 Transfer Amount"]
	assert.False(t, hasTransfer)
}

func TestSubmitDeliveryFailure(t *testing.T) {
	client, _, calls := captureWebhook(t, http.StatusTooManyRequests)
	s := &Submitter{Webhook: client}

	lines, total := linesFor(t, "rank_1")
	d := Draft{
		IGN:     "Notch",
		Discord: "cadet#1234",
		Method:  MethodInstapay,
		Proof:   &webhook.Attachment{Filename: "p.png", Data: []byte("x")},
		Quote:   rates.Fallback(),
	}
	_, err := s.Submit(context.Background(), d, lines, total)
	require.Error(t, err)
	assert.Equal(t, 1, *calls, "a failed submission is a single attempt, no retries")
}

func TestSubmitDistinctRefs(t *testing.T) {
	client, msgs, _ := captureWebhook(t, http.StatusOK)
	s := &Submitter{Webhook: client}

	lines, total := linesFor(t, "rank_1")
	d := Draft{
		IGN:     "Notch",
		Discord: "cadet#1234",
		Method:  MethodTelda,
		Proof:   &webhook.Attachment{Filename: "p.png", Data: []byte("x")},
		Quote:   rates.Fallback(),
	}
	r1, err := s.Submit(context.Background(), d, lines, total)
	require.NoError(t, err)
	r2, err := s.Submit(context.Background(), d, lines, total)
	require.NoError(t, err)
	assert.NotEqual(t, r1.Ref, r2.Ref)
	assert.Len(t, *msgs, 2)
}

func TestSubmitUnconfiguredWebhook(t *testing.T) {
	client := webhook.NewClient("")
	client.SetBypassDelay(5 * time.Millisecond)

	s := &Submitter{Webhook: client}
	lines, total := linesFor(t, "rank_1")
	d := Draft{
		IGN:     "Notch",
		Discord: "cadet#1234",
		Method:  MethodSTCPay,
		Proof:   &webhook.Attachment{Filename: "p.png", Data: []byte("x")},
		Quote:   rates.Fallback(),
	}
	res, err := s.Submit(context.Background(), d, lines, total)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Ref)
}

func TestSubmitEmptyCartValue(t *testing.T) {
	assert.Equal(t, "No items", cartItemsValue(nil))
	assert.True(t, strings.HasPrefix(cartItemsValue([]cart.Line{{Entry: catalog.Entry{Name: "VIP"}}}), "• VIP"))
}
