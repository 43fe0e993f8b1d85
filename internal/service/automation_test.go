package service_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"replyflow.app/api/common/id"
	"replyflow.app/api/internal/model"
	"replyflow.app/api/internal/queue"
	"replyflow.app/api/internal/service"
	"replyflow.app/api/internal/store"
)

var _ = Describe("AutomationService", func() {
	const userID int64 = 42

	var (
		ctx          context.Context
		svc          service.AutomationService
		keywordStore *mockKeywordStore
		configStore  *mockConfigStore
		txRunner     *mockTxRunner
		producer     *mockProducer
	)

	BeforeEach(func() {
		ctx = context.Background()
		keywordStore = &mockKeywordStore{}
		configStore = &mockConfigStore{}
		txRunner = &mockTxRunner{provider: &mockStoreProvider{keywords: keywordStore, configs: configStore}}
		producer = &mockProducer{}

		Expect(id.Init(1)).To(Succeed())
		svc = service.NewAutomationService(keywordStore, configStore, txRunner, producer)
	})

	Describe("CreateKeyword", func() {
		It("assigns an ID, scopes the row to the user and publishes a change", func() {
			var captured *model.Keyword
			keywordStore.createFn = func(_ context.Context, k *model.Keyword) error {
				captured = k
				return nil
			}

			kw, err := svc.CreateKeyword(ctx, userID, model.KeywordDraft{
				Word: "quero", Link: "https://x", Message: "m", ButtonText: "b", Enabled: true,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(kw.ID).NotTo(BeZero())
			Expect(kw.UserID).To(Equal(userID))
			Expect(kw.TriggersCount).To(BeZero())
			Expect(captured).To(Equal(kw))

			Expect(producer.events).To(HaveLen(1))
			Expect(producer.events[0].Entity).To(Equal(queue.EntityKeyword))
			Expect(producer.events[0].Action).To(Equal(queue.ActionCreated))
			Expect(producer.events[0].EntityID).To(Equal(kw.ID))
		})

		It("returns the store error and publishes nothing", func() {
			keywordStore.createFn = func(context.Context, *model.Keyword) error {
				return errors.New("connection refused")
			}

			kw, err := svc.CreateKeyword(ctx, userID, model.KeywordDraft{Word: "w", Link: "l"})

			Expect(err).To(MatchError(ContainSubstring("connection refused")))
			Expect(kw).To(BeNil())
			Expect(producer.events).To(BeEmpty())
		})

		It("still succeeds when the change event cannot be published", func() {
			producer.publishFn = func(context.Context, queue.ChangeEvent) error {
				return errors.New("redis down")
			}

			kw, err := svc.CreateKeyword(ctx, userID, model.KeywordDraft{Word: "w", Link: "l"})

			Expect(err).NotTo(HaveOccurred())
			Expect(kw).NotTo(BeNil())
		})
	})

	Describe("UpdateKeyword", func() {
		It("passes the patch through untouched", func() {
			word := "novo"
			keywordStore.updateFn = func(_ context.Context, uid, kid int64, patch model.KeywordPatch) (*model.Keyword, error) {
				Expect(uid).To(Equal(userID))
				Expect(kid).To(Equal(int64(7)))
				Expect(patch.Word).To(Equal(&word))
				Expect(patch.Link).To(BeNil())
				return &model.Keyword{ID: kid, UserID: uid, Word: word, Link: "https://x"}, nil
			}

			kw, err := svc.UpdateKeyword(ctx, userID, 7, model.KeywordPatch{Word: &word})

			Expect(err).NotTo(HaveOccurred())
			Expect(kw.Word).To(Equal("novo"))
			Expect(kw.Link).To(Equal("https://x"))
			Expect(producer.events).To(ConsistOf(HaveField("Action", queue.ActionUpdated)))
		})

		It("maps a missing row to ErrKeywordNotFound", func() {
			_, err := svc.UpdateKeyword(ctx, userID, 7, model.KeywordPatch{})
			Expect(err).To(MatchError(service.ErrKeywordNotFound))
			Expect(producer.events).To(BeEmpty())
		})
	})

	Describe("ToggleKeyword", func() {
		It("returns the row with the value the store flipped to", func() {
			keywordStore.toggleFn = func(_ context.Context, _, kid int64) (*model.Keyword, error) {
				return &model.Keyword{ID: kid, Word: "quero", Enabled: false}, nil
			}

			kw, err := svc.ToggleKeyword(ctx, userID, 9)

			Expect(err).NotTo(HaveOccurred())
			Expect(kw.Enabled).To(BeFalse())
			Expect(producer.events).To(ConsistOf(HaveField("Action", queue.ActionToggled)))
		})

		It("maps a missing row to ErrKeywordNotFound", func() {
			_, err := svc.ToggleKeyword(ctx, userID, 9)
			Expect(err).To(MatchError(service.ErrKeywordNotFound))
		})
	})

	Describe("DeleteKeyword", func() {
		It("succeeds for an absent keyword", func() {
			Expect(svc.DeleteKeyword(ctx, userID, 1234)).To(Succeed())
			Expect(producer.events).To(ConsistOf(HaveField("Action", queue.ActionDeleted)))
		})

		It("wraps store failures", func() {
			keywordStore.deleteFn = func(context.Context, int64, int64) error {
				return errors.New("timeout")
			}
			Expect(svc.DeleteKeyword(ctx, userID, 1)).To(MatchError(ContainSubstring("deleting keyword")))
		})
	})

	Describe("GetConfig", func() {
		It("offers defaults to the store and returns what it stored", func() {
			var offered model.AutomationConfig
			configStore.getOrCreateFn = func(_ context.Context, cfg *model.AutomationConfig) error {
				offered = *cfg
				return nil
			}

			cfg, err := svc.GetConfig(ctx, userID)

			Expect(err).NotTo(HaveOccurred())
			Expect(offered.UserID).To(Equal(userID))
			Expect(offered.ID).NotTo(BeZero())
			Expect(cfg.DelaySeconds).To(Equal(model.DefaultDelaySeconds))
			Expect(cfg.ReplyToComment).To(BeTrue())
			Expect(cfg.SendDM).To(BeTrue())
			Expect(cfg.AccessToken).To(BeEmpty())
		})

		It("returns the existing row on later reads", func() {
			existing := model.AutomationConfig{ID: 77, UserID: userID, DelaySeconds: 30, InstagramID: "ig"}
			configStore.getOrCreateFn = func(_ context.Context, cfg *model.AutomationConfig) error {
				*cfg = existing
				return nil
			}

			first, err := svc.GetConfig(ctx, userID)
			Expect(err).NotTo(HaveOccurred())
			second, err := svc.GetConfig(ctx, userID)
			Expect(err).NotTo(HaveOccurred())

			Expect(first).To(Equal(second))
			Expect(first.ID).To(Equal(int64(77)))
		})
	})

	Describe("UpdateConfig", func() {
		It("provisions then updates inside one transaction", func() {
			var calls []string
			configStore.getOrCreateFn = func(context.Context, *model.AutomationConfig) error {
				calls = append(calls, "get_or_create")
				return nil
			}
			configStore.updateFn = func(_ context.Context, uid int64, patch model.AutomationConfigPatch) (*model.AutomationConfig, error) {
				calls = append(calls, "update")
				cfg := model.DefaultAutomationConfig(uid)
				cfg.ID = 5
				patch.Apply(&cfg)
				return &cfg, nil
			}

			delay := 12
			cfg, err := svc.UpdateConfig(ctx, userID, model.AutomationConfigPatch{DelaySeconds: &delay})

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.DelaySeconds).To(Equal(12))
			Expect(cfg.SendDM).To(BeTrue())
			Expect(calls).To(Equal([]string{"get_or_create", "update"}))
			Expect(txRunner.calls).To(Equal(1))
			Expect(producer.events).To(ConsistOf(And(
				HaveField("Entity", queue.EntityAutomationConfig),
				HaveField("EntityID", int64(5)),
			)))
		})

		It("returns the error when the update fails", func() {
			configStore.updateFn = func(context.Context, int64, model.AutomationConfigPatch) (*model.AutomationConfig, error) {
				return nil, store.ErrNotFound
			}

			cfg, err := svc.UpdateConfig(ctx, userID, model.AutomationConfigPatch{})

			Expect(err).To(MatchError(store.ErrNotFound))
			Expect(cfg).To(BeNil())
			Expect(producer.events).To(BeEmpty())
		})
	})

	Describe("Dashboard", func() {
		It("splits active keywords out and computes stats", func() {
			older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
			newer := older.Add(time.Hour)
			keywordStore.listByUserFn = func(_ context.Context, uid int64) ([]model.Keyword, error) {
				Expect(uid).To(Equal(userID))
				return []model.Keyword{
					{ID: 2, Enabled: true, TriggersCount: 3, CreatedAt: newer},
					{ID: 1, Enabled: false, TriggersCount: 4, CreatedAt: older},
				}, nil
			}

			d, err := svc.Dashboard(ctx, userID)

			Expect(err).NotTo(HaveOccurred())
			Expect(d.TotalKeywords).To(Equal(2))
			Expect(d.ActiveKeywords).To(HaveLen(1))
			Expect(d.ActiveKeywords[0].ID).To(Equal(int64(2)))
			Expect(d.Stats.TotalTriggers).To(Equal(7))
			Expect(d.Stats.MessagesSent).To(Equal(7))
			Expect(d.Stats.ActiveKeywords).To(Equal(1))
			Expect(*d.Stats.LastActivity).To(Equal(newer))
		})
	})

	Describe("adding then toggling a keyword", func() {
		It("keeps stats consistent with the stored rows", func() {
			var rows []model.Keyword
			keywordStore.createFn = func(_ context.Context, k *model.Keyword) error {
				k.CreatedAt = time.Now()
				rows = append([]model.Keyword{*k}, rows...)
				return nil
			}
			keywordStore.listByUserFn = func(context.Context, int64) ([]model.Keyword, error) {
				return rows, nil
			}
			keywordStore.toggleFn = func(_ context.Context, _, kid int64) (*model.Keyword, error) {
				for i := range rows {
					if rows[i].ID == kid {
						rows[i].Enabled = !rows[i].Enabled
						k := rows[i]
						return &k, nil
					}
				}
				return nil, store.ErrNotFound
			}

			kw, err := svc.CreateKeyword(ctx, userID, model.KeywordDraft{
				Word: "quero", Link: "https://x", Message: "m", ButtonText: "b", Enabled: true,
			})
			Expect(err).NotTo(HaveOccurred())

			list, err := svc.ListKeywords(ctx, userID)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(1))

			stats, err := svc.Stats(ctx, userID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.ActiveKeywords).To(Equal(1))
			Expect(stats.TotalTriggers).To(BeZero())

			toggled, err := svc.ToggleKeyword(ctx, userID, kw.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(toggled.Enabled).To(BeFalse())
			Expect(toggled.Word).To(Equal("quero"))

			stats, err = svc.Stats(ctx, userID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.ActiveKeywords).To(BeZero())
		})
	})
})
