package bot_test

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/slack-go/slack"
	"go.uber.org/mock/gomock"

	"github.com/forgoes/gilbert/ai"
	"github.com/forgoes/gilbert/bot"
	"github.com/forgoes/gilbert/bot/mocks"
	"github.com/forgoes/gilbert/store"
)

var _ = Describe("Bot", func() {
	var (
		ctrl      *gomock.Controller
		mockStore *mocks.MockStore
		mockAI    *mocks.MockResponder
		poster    *mocks.MockPoster
		journal   *mocks.MockJournal
		metrics   *bot.Metrics
		b         *bot.Bot
		ctx       context.Context
		posted    []url.Values
	)

	expectReply := func() {
		poster.EXPECT().PostMessageContext(gomock.Any(), "C1", gomock.Any()).
			DoAndReturn(func(_ context.Context, channel string, opts ...slack.MsgOption) (string, string, error) {
				_, values, err := slack.UnsafeApplyMsgOptions("", channel, "", opts...)
				Expect(err).NotTo(HaveOccurred())
				posted = append(posted, values)
				return channel, "1700000001.000100", nil
			})
		journal.EXPECT().RecordReply(gomock.Any(), "C1", gomock.Any(), "1700000001.000100").Return(nil)
	}

	expectFresh := func(intent bot.Intent) {
		journal.EXPECT().Record(gomock.Any(), gomock.Any(), intent).Return(true, nil)
	}

	message := func(text string) bot.Message {
		return bot.Message{
			EventID: "Ev1",
			Channel: "C1",
			User:    "U1",
			Text:    text,
			TS:      "1700000000.000100",
			Direct:  true,
		}
	}

	overheard := func(text string) bot.Message {
		msg := message(text)
		msg.Direct = false
		return msg
	}

	replyText := func() string {
		Expect(posted).To(HaveLen(1))
		return posted[0].Get("text")
	}

	failures := func(service string) float64 {
		return testutil.ToFloat64(metrics.Failures.WithLabelValues(service))
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockStore = mocks.NewMockStore(ctrl)
		mockAI = mocks.NewMockResponder(ctrl)
		poster = mocks.NewMockPoster(ctrl)
		journal = mocks.NewMockJournal(ctrl)
		metrics = bot.NewMetrics(prometheus.NewRegistry())
		b = bot.New(mockStore, mockAI, poster,
			bot.WithJournal(journal),
			bot.WithMetrics(metrics),
			bot.WithLogger(discardLogger()),
			bot.WithHistory(10),
		)
		ctx = context.Background()
		posted = nil
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("filtering", func() {
		It("should ignore messages from bots", func() {
			msg := message("remember something")
			msg.FromBot = true
			Expect(b.Handle(ctx, msg)).To(Succeed())
		})

		It("should ignore overheard chatter", func() {
			Expect(b.Handle(ctx, overheard("lunch anyone?"))).To(Succeed())
		})

		It("should only take remember and recall from overheard messages", func() {
			Expect(b.Handle(ctx, overheard("Ask the client for the brief"))).To(Succeed())
			Expect(b.Handle(ctx, overheard("update: the build is green"))).To(Succeed())

			expectFresh(bot.IntentRemember)
			mockStore.EXPECT().Remember(gomock.Any(), "U1", "standup moved to 10").Return(store.MemoryEntry{}, nil)
			expectReply()

			Expect(b.Handle(ctx, overheard("remember standup moved to 10"))).To(Succeed())
			Expect(replyText()).To(Equal("I've remembered that information! 📝"))
		})

		It("should skip redelivered events", func() {
			journal.EXPECT().Record(gomock.Any(), gomock.Any(), bot.IntentRemember).Return(false, nil)
			Expect(b.Handle(ctx, message("remember something"))).To(Succeed())
		})

		It("should keep going when the journal fails", func() {
			journal.EXPECT().Record(gomock.Any(), gomock.Any(), bot.IntentHelp).Return(false, errors.New("db down"))
			expectReply()

			Expect(b.Handle(ctx, message("help"))).To(Succeed())
			Expect(replyText()).To(ContainSubstring("Here's what I can do"))
		})
	})

	Describe("replies", func() {
		It("should reply in the thread of the message", func() {
			expectFresh(bot.IntentHelp)
			expectReply()

			msg := message("help")
			msg.ThreadTS = "1699999999.000001"
			Expect(b.Handle(ctx, msg)).To(Succeed())
			Expect(posted[0].Get("thread_ts")).To(Equal("1699999999.000001"))
		})

		It("should return an error when posting fails", func() {
			expectFresh(bot.IntentHelp)
			poster.EXPECT().PostMessageContext(gomock.Any(), "C1", gomock.Any()).
				Return("", "", errors.New("channel_not_found"))

			err := b.Handle(ctx, message("help"))
			Expect(err).To(MatchError(ContainSubstring("channel_not_found")))
			Expect(failures("slack")).To(Equal(1.0))
		})

		It("should count handled commands", func() {
			expectFresh(bot.IntentHelp)
			expectReply()

			Expect(b.Handle(ctx, message("help"))).To(Succeed())
			Expect(testutil.ToFloat64(metrics.Commands.WithLabelValues("help"))).To(Equal(1.0))
		})
	})

	Describe("remember", func() {
		It("should store the text", func() {
			expectFresh(bot.IntentRemember)
			mockStore.EXPECT().Remember(gomock.Any(), "U1", "Acme prefers blue").
				Return(store.MemoryEntry{Info: "Acme prefers blue"}, nil)
			expectReply()

			Expect(b.Handle(ctx, message("remember Acme prefers blue"))).To(Succeed())
			Expect(replyText()).To(Equal("I've remembered that information! 📝"))
		})

		It("should ask for something to remember", func() {
			expectFresh(bot.IntentRemember)
			expectReply()

			Expect(b.Handle(ctx, message("remember"))).To(Succeed())
			Expect(replyText()).To(ContainSubstring("Tell me what to remember"))
		})

		It("should apologize when the sheet is unavailable", func() {
			expectFresh(bot.IntentRemember)
			mockStore.EXPECT().Remember(gomock.Any(), "U1", "x").Return(store.MemoryEntry{}, errors.New("403"))
			expectReply()

			Expect(b.Handle(ctx, message("remember x"))).To(Succeed())
			Expect(replyText()).To(ContainSubstring("couldn't save"))
			Expect(failures("sheets")).To(Equal(1.0))
		})
	})

	Describe("recall", func() {
		It("should list matching memories", func() {
			expectFresh(bot.IntentRecall)
			mockStore.EXPECT().Recall(gomock.Any(), "acme", 5).Return([]store.MemoryEntry{
				{Timestamp: "2024-01-01 10:00:00", User: "U2", Info: "Acme prefers blue"},
			}, nil)
			expectReply()

			Expect(b.Handle(ctx, message("recall acme"))).To(Succeed())
			Expect(replyText()).To(Equal("Here's what I remember about that:\n" +
				"• Acme prefers blue (from <@U2> on 2024-01-01 10:00:00)\n"))
		})

		It("should say when nothing matches", func() {
			expectFresh(bot.IntentRecall)
			mockStore.EXPECT().Recall(gomock.Any(), "globex", 5).Return(nil, nil)
			expectReply()

			Expect(b.Handle(ctx, message("recall globex"))).To(Succeed())
			Expect(replyText()).To(Equal("I don't have any memories about that topic yet."))
		})
	})

	Describe("onboard", func() {
		It("should add the client and start the checklist", func() {
			expectFresh(bot.IntentOnboard)
			mockStore.EXPECT().StartOnboarding(gomock.Any(), "Acme", "jane@acme.test", "U1").
				Return(store.Client{ID: "id-1", Name: "Acme"}, true, nil)
			expectReply()

			Expect(b.Handle(ctx, message("onboard Acme | jane@acme.test"))).To(Succeed())
			Expect(replyText()).To(ContainSubstring("Added *Acme* as a new client"))
			Expect(replyText()).To(ContainSubstring("kickoff, contract, access, brief"))
		})

		It("should show the checklist status", func() {
			expectFresh(bot.IntentOnboard)
			mockStore.EXPECT().Onboarding(gomock.Any(), "Acme").Return([]store.OnboardingStep{
				{Client: "Acme", Step: "kickoff", Status: store.StatusDone},
				{Client: "Acme", Step: "contract", Status: store.StatusPending},
			}, nil)
			expectReply()

			Expect(b.Handle(ctx, message("onboard status Acme"))).To(Succeed())
			Expect(replyText()).To(Equal("Onboarding for *Acme* (1/2 done):\n✅ kickoff\n⬜ contract\n"))
		})

		It("should mark a step as done", func() {
			expectFresh(bot.IntentOnboard)
			mockStore.EXPECT().CompleteStep(gomock.Any(), "Acme", "contract", "U1").
				Return(store.OnboardingStep{Client: "Acme", Step: "contract", Status: store.StatusDone}, nil)
			expectReply()

			Expect(b.Handle(ctx, message("onboard done Acme | contract"))).To(Succeed())
			Expect(replyText()).To(Equal("Marked *contract* as done for *Acme*. ✅"))
		})

		It("should report an unknown step without counting a failure", func() {
			expectFresh(bot.IntentOnboard)
			mockStore.EXPECT().CompleteStep(gomock.Any(), "Acme", "invoice", "U1").
				Return(store.OnboardingStep{}, fmt.Errorf("step: %w", store.ErrNotFound))
			expectReply()

			Expect(b.Handle(ctx, message("onboard done Acme | invoice"))).To(Succeed())
			Expect(replyText()).To(ContainSubstring("couldn't find the step *invoice*"))
			Expect(failures("sheets")).To(BeZero())
		})

		It("should explain the done syntax", func() {
			expectFresh(bot.IntentOnboard)
			expectReply()

			Expect(b.Handle(ctx, message("onboard done Acme"))).To(Succeed())
			Expect(replyText()).To(ContainSubstring("Usage: `onboard done"))
		})
	})

	Describe("ask", func() {
		It("should answer with memories and history and keep new facts", func() {
			msg := overheard("<@UBOT> what's due for Acme?")
			msg.Mentioned = true

			expectFresh(bot.IntentAsk)
			mockStore.EXPECT().RecentMemories(gomock.Any(), 5).Return([]store.MemoryEntry{
				{Info: "Acme logo due Friday"},
			}, nil)
			history := []ai.Turn{{Content: "hi"}, {FromBot: true, Content: "hello!"}}
			journal.EXPECT().History(gomock.Any(), "C1", "1700000000.000100", 10).Return(history, nil)
			mockAI.EXPECT().Respond(gomock.Any(), "what's due for Acme?", []string{"Acme logo due Friday"}, history).
				Return("The Acme logo is due Friday.", nil)
			mockAI.EXPECT().Extract(gomock.Any(), "what's due for Acme?").Return("Asked about Acme deadlines", nil)
			mockStore.EXPECT().Remember(gomock.Any(), "U1", "Asked about Acme deadlines").Return(store.MemoryEntry{}, nil)
			expectReply()

			Expect(b.Handle(ctx, msg)).To(Succeed())
			Expect(replyText()).To(Equal("The Acme logo is due Friday."))
		})

		It("should treat direct messages as questions", func() {
			msg := message("hello there")

			expectFresh(bot.IntentAsk)
			mockStore.EXPECT().RecentMemories(gomock.Any(), 5).Return(nil, errors.New("sheet down"))
			journal.EXPECT().History(gomock.Any(), "C1", gomock.Any(), 10).Return(nil, nil)
			mockAI.EXPECT().Respond(gomock.Any(), "hello there", nil, nil).Return("Hi!", nil)
			mockAI.EXPECT().Extract(gomock.Any(), "hello there").Return("", nil)
			expectReply()

			Expect(b.Handle(ctx, msg)).To(Succeed())
			Expect(replyText()).To(Equal("Hi!"))
		})

		It("should apologize when the model fails", func() {
			expectFresh(bot.IntentAsk)
			mockStore.EXPECT().RecentMemories(gomock.Any(), 5).Return(nil, nil)
			journal.EXPECT().History(gomock.Any(), "C1", gomock.Any(), 10).Return(nil, nil)
			mockAI.EXPECT().Respond(gomock.Any(), "status?", nil, nil).Return("", errors.New("429"))
			expectReply()

			Expect(b.Handle(ctx, message("ask status?"))).To(Succeed())
			Expect(replyText()).To(Equal("I apologize, but I'm having trouble processing that request right now."))
			Expect(failures("openai")).To(Equal(1.0))
		})

		It("should still answer when extraction fails", func() {
			expectFresh(bot.IntentAsk)
			mockStore.EXPECT().RecentMemories(gomock.Any(), 5).Return(nil, nil)
			journal.EXPECT().History(gomock.Any(), "C1", gomock.Any(), 10).Return(nil, nil)
			mockAI.EXPECT().Respond(gomock.Any(), "status?", nil, nil).Return("All good.", nil)
			mockAI.EXPECT().Extract(gomock.Any(), "status?").Return("", errors.New("timeout"))
			expectReply()

			Expect(b.Handle(ctx, message("ask status?"))).To(Succeed())
			Expect(replyText()).To(Equal("All good."))
		})
	})

	Describe("deliverables", func() {
		It("should log a delivery", func() {
			expectFresh(bot.IntentDeliver)
			mockStore.EXPECT().LogDelivery(gomock.Any(), "Acme", "logo.zip", "https://files.test/logo.zip", "U1").
				Return(store.Deliverable{Client: "Acme", File: "logo.zip"}, nil)
			expectReply()

			Expect(b.Handle(ctx, message("deliver Acme | logo.zip | https://files.test/logo.zip"))).To(Succeed())
			Expect(replyText()).To(Equal("Logged delivery of *logo.zip* to *Acme*. 📦"))
		})

		It("should list deliveries", func() {
			expectFresh(bot.IntentDeliver)
			mockStore.EXPECT().Deliveries(gomock.Any(), "Acme", 10).Return([]store.Deliverable{
				{Timestamp: "t1", Client: "Acme", File: "logo.zip", Link: "https://files.test/logo.zip", DeliveredBy: "U2"},
				{Timestamp: "t2", Client: "Acme", File: "deck.pdf", DeliveredBy: "U2"},
			}, nil)
			expectReply()

			Expect(b.Handle(ctx, message("deliveries Acme"))).To(Succeed())
			Expect(replyText()).To(Equal("Deliveries for *Acme*:\n" +
				"• <https://files.test/logo.zip|logo.zip> on t1 by <@U2>\n" +
				"• deck.pdf on t2 by <@U2>\n"))
		})
	})

	Describe("updates", func() {
		It("should add an update", func() {
			expectFresh(bot.IntentUpdate)
			mockStore.EXPECT().AddUpdate(gomock.Any(), "Acme", "sent first draft", "U1").
				Return(store.Update{Client: "Acme"}, nil)
			expectReply()

			Expect(b.Handle(ctx, message("update Acme | sent first draft"))).To(Succeed())
			Expect(replyText()).To(Equal("Noted the update for *Acme*. 📝"))
		})

		It("should list updates", func() {
			expectFresh(bot.IntentUpdate)
			mockStore.EXPECT().Updates(gomock.Any(), "Acme", 5).Return(nil, nil)
			expectReply()

			Expect(b.Handle(ctx, message("updates Acme"))).To(Succeed())
			Expect(replyText()).To(Equal("No updates for *Acme* yet."))
		})
	})

	Describe("clients", func() {
		It("should list clients with contacts", func() {
			expectFresh(bot.IntentClients)
			mockStore.EXPECT().Clients(gomock.Any()).Return([]store.Client{
				{Name: "Acme", Contact: "jane@acme.test"},
				{Name: "Globex"},
			}, nil)
			expectReply()

			Expect(b.Handle(ctx, message("clients"))).To(Succeed())
			Expect(replyText()).To(Equal("Clients:\n• Acme (jane@acme.test)\n• Globex\n"))
		})
	})
})
