package platform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloud-ru/unit-economics-go/internal/report"
)

const sentMessageReply = `{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"}}}`

func TestTelegramHostSendData(t *testing.T) {
	var gotPath, gotChatID, gotText, gotParseMode string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotChatID = r.FormValue("chat_id")
		gotText = r.FormValue("text")
		gotParseMode = r.FormValue("parse_mode")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sentMessageReply))
	}))
	defer srv.Close()

	host, err := NewTelegramHost(srv.URL+"/", "123:abc", "42", srv.Client())
	require.NoError(t, err)

	err = host.SendData(context.Background(), report.Payload{
		Type:    report.TypeShare,
		Message: "📊 *Результаты*",
	})
	require.NoError(t, err)

	assert.Equal(t, "/bot123:abc/sendMessage", gotPath)
	assert.Equal(t, "42", gotChatID)
	assert.Equal(t, "📊 *Результаты*", gotText)
	assert.Contains(t, gotParseMode, "Markdown")
	assert.NotContains(t, gotParseMode, "MarkdownV2")
	assert.Equal(t, "telegram", host.Name())
}

func TestTelegramHostErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"api error", http.StatusBadRequest, `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`},
		{"ok false", http.StatusOK, `{"ok":false,"error_code":429,"description":"flood"}`},
		{"broken body", http.StatusOK, `not json`},
		{"gateway error", http.StatusBadGateway, `<html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			host, err := NewTelegramHost(srv.URL, "t", "1", nil)
			require.NoError(t, err)

			err = host.SendData(context.Background(), report.Payload{Message: "x"})
			assert.Error(t, err)
		})
	}
}

func TestTelegramHostCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sentMessageReply))
	}))
	defer srv.Close()

	host, err := NewTelegramHost(srv.URL, "t", "1", srv.Client())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = host.SendData(ctx, report.Payload{Message: "x"})
	assert.Error(t, err)
}
