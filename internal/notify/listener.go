package notify

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"adpanel/internal/core/domain"
)

// SignalHandler reacts to a server change signal. It receives only the
// event name; payloads are never trusted for state changes.
type SignalHandler interface {
	OnServerChangeSignal(ctx context.Context, name domain.EventName)
}

// SignalFunc adapts a function to SignalHandler.
type SignalFunc func(ctx context.Context, name domain.EventName)

// OnServerChangeSignal calls f.
func (f SignalFunc) OnServerChangeSignal(ctx context.Context, name domain.EventName) {
	f(ctx, name)
}

// Listener is the client end of the notification channel.
type Listener struct {
	URL     string
	Header  http.Header
	Dialer  *websocket.Dialer
	Handler SignalHandler
	Logger  *slog.Logger
}

// Run dials the channel and forwards each recognised event to the handler
// exactly once. Unknown names and undecodable frames are skipped. Run
// returns when ctx is done or the connection drops.
func (l *Listener) Run(ctx context.Context) error {
	dialer := l.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}
	conn, resp, err := dialer.DialContext(ctx, l.URL, l.Header)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		return err
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) && closeErr.Code == websocket.CloseNormalClosure {
				return nil
			}
			return err
		}
		var frame struct {
			Event domain.EventName `json:"event"`
		}
		if err = json.Unmarshal(data, &frame); err != nil {
			l.logger().Debug("skipping undecodable frame", slog.Any("error", err))
			continue
		}
		if !frame.Event.Recognized() {
			continue
		}
		l.Handler.OnServerChangeSignal(ctx, frame.Event)
	}
}

func (l *Listener) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.Default()
	}
	return l.Logger
}
