package slack

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"go.uber.org/mock/gomock"

	"github.com/forgoes/gilbert/api"
	"github.com/forgoes/gilbert/bot"
	"github.com/forgoes/gilbert/bot/mocks"
	"github.com/forgoes/gilbert/runtime"
	"github.com/forgoes/gilbert/store"
)

const signingSecret = "8f742231b10e8888abcd99yyyzzz85a5"

func sign(req *http.Request, body []byte, secret string) {
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = fmt.Fprintf(mac, "v0:%s:%s", ts, body)
	req.Header.Set("X-Slack-Request-Timestamp", ts)
	req.Header.Set("X-Slack-Signature", "v0="+hex.EncodeToString(mac.Sum(nil)))
}

func callback(eventID, inner string) []byte {
	return []byte(fmt.Sprintf(`{
		"token": "t",
		"team_id": "T1",
		"api_app_id": "A1",
		"type": "event_callback",
		"event_id": %q,
		"event_time": 1700000000,
		"event": %s
	}`, eventID, inner))
}

var _ = Describe("Events", func() {
	var (
		ctrl      *gomock.Controller
		mockStore *mocks.MockStore
		poster    *mocks.MockPoster
		router    *gin.Engine
		posted    chan string
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockStore = mocks.NewMockStore(ctrl)
		poster = mocks.NewMockPoster(ctrl)
		posted = make(chan string, 1)

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		rt := &runtime.Runtime{
			Config: &runtime.Config{Slack: runtime.SlackConfig{Secret: signingSecret}},
			Logger: logger,
			Slack:  &runtime.Slack{UserID: "UBOT"},
			Bot:    bot.New(mockStore, mocks.NewMockResponder(ctrl), poster, bot.WithLogger(logger)),
		}

		router = gin.New()
		router.POST("/api/slack/events", api.Wrap(Events, rt, false))
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	post := func(body []byte, secret string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/slack/events", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		sign(req, body, secret)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	It("should reject bad signatures", func() {
		rec := post([]byte(`{"type":"url_verification","challenge":"abc"}`), "wrong-secret")
		Expect(rec.Code).To(Equal(http.StatusUnauthorized))
	})

	It("should answer the url verification challenge", func() {
		rec := post([]byte(`{"token":"t","type":"url_verification","challenge":"abc123"}`), signingSecret)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(MatchJSON(`{"challenge":"abc123"}`))
	})

	It("should hand mentions to the bot and reply", func() {
		mockStore.EXPECT().Remember(gomock.Any(), "U1", "Acme prefers blue").Return(store.MemoryEntry{}, nil)
		poster.EXPECT().PostMessageContext(gomock.Any(), "C1", gomock.Any()).
			DoAndReturn(func(_ context.Context, channel string, opts ...slack.MsgOption) (string, string, error) {
				_, values, err := slack.UnsafeApplyMsgOptions("", channel, "", opts...)
				Expect(err).NotTo(HaveOccurred())
				posted <- values.Get("text")
				return channel, "1700000001.000200", nil
			})

		rec := post(callback("Ev1", `{
			"type": "app_mention",
			"user": "U1",
			"text": "<@UBOT> remember Acme prefers blue",
			"ts": "1700000000.000100",
			"channel": "C1",
			"event_ts": "1700000000.000100"
		}`), signingSecret)

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(MatchJSON(`{"status":"accepted"}`))
		Eventually(posted).WithTimeout(2 * time.Second).Should(Receive(Equal("I've remembered that information! 📝")))
	})

	It("should ignore message subtypes", func() {
		rec := post(callback("Ev2", `{
			"type": "message",
			"subtype": "message_changed",
			"channel": "C1",
			"ts": "1700000000.000100",
			"event_ts": "1700000000.000100"
		}`), signingSecret)

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(MatchJSON(`{"status":"ignored"}`))
	})

	It("should reject malformed payloads", func() {
		rec := post([]byte(`{not json`), signingSecret)
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
	})
})

var _ = Describe("toMessage", func() {
	event := func(inner interface{}) slackevents.EventsAPIEvent {
		return slackevents.EventsAPIEvent{
			Type:       slackevents.CallbackEvent,
			Data:       &slackevents.EventsAPICallbackEvent{EventID: "Ev9"},
			InnerEvent: slackevents.EventsAPIInnerEvent{Data: inner},
		}
	}

	It("should mark app mentions as mentioned", func() {
		msg, ok := toMessage(event(&slackevents.AppMentionEvent{
			User: "U1", Channel: "C1", Text: "<@UBOT> hi", TimeStamp: "1.0", ThreadTimeStamp: "0.5",
		}), "UBOT")
		Expect(ok).To(BeTrue())
		Expect(msg).To(Equal(bot.Message{
			EventID: "Ev9", Channel: "C1", User: "U1", Text: "<@UBOT> hi", TS: "1.0", ThreadTS: "0.5", Mentioned: true,
		}))
	})

	It("should mark direct messages", func() {
		msg, ok := toMessage(event(&slackevents.MessageEvent{
			User: "U1", Channel: "D1", ChannelType: "im", Text: "hello", TimeStamp: "1.0",
		}), "UBOT")
		Expect(ok).To(BeTrue())
		Expect(msg.Direct).To(BeTrue())
	})

	It("should leave channel mentions to the app_mention event", func() {
		_, ok := toMessage(event(&slackevents.MessageEvent{
			User: "U1", Channel: "C1", ChannelType: "channel", Text: "<@UBOT> hello", TimeStamp: "1.0",
		}), "UBOT")
		Expect(ok).To(BeFalse())
	})

	It("should keep overheard channel commands", func() {
		msg, ok := toMessage(event(&slackevents.MessageEvent{
			User: "U1", Channel: "C1", ChannelType: "channel", Text: "recall acme", TimeStamp: "1.0",
		}), "UBOT")
		Expect(ok).To(BeTrue())
		Expect(msg.Direct).To(BeFalse())
		Expect(msg.Mentioned).To(BeFalse())
	})

	It("should drop bot and own messages", func() {
		_, ok := toMessage(event(&slackevents.MessageEvent{BotID: "B1", Channel: "C1", Text: "x"}), "UBOT")
		Expect(ok).To(BeFalse())

		_, ok = toMessage(event(&slackevents.MessageEvent{User: "UBOT", Channel: "D1", Text: "x"}), "UBOT")
		Expect(ok).To(BeFalse())
	})
})
