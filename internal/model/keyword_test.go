package model_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"replyflow.app/api/internal/model"
)

func ptr[T any](v T) *T { return &v }

var _ = Describe("KeywordPatch", func() {
	It("only touches supplied fields", func() {
		k := model.Keyword{ID: 1, Word: "quero", Link: "https://x", Message: "m", ButtonText: "b", Enabled: true, TriggersCount: 3}

		model.KeywordPatch{Message: ptr("novo"), Enabled: ptr(false)}.Apply(&k)

		Expect(k.Message).To(Equal("novo"))
		Expect(k.Enabled).To(BeFalse())
		Expect(k.Word).To(Equal("quero"))
		Expect(k.Link).To(Equal("https://x"))
		Expect(k.ButtonText).To(Equal("b"))
		Expect(k.TriggersCount).To(Equal(3))
	})

	It("reports emptiness", func() {
		Expect(model.KeywordPatch{}.IsEmpty()).To(BeTrue())
		Expect(model.KeywordPatch{Link: ptr("")}.IsEmpty()).To(BeFalse())
	})
})

var _ = Describe("AutomationConfig", func() {
	It("provisions defaults for a new user", func() {
		cfg := model.DefaultAutomationConfig(9)

		Expect(cfg.UserID).To(Equal(int64(9)))
		Expect(cfg.DelaySeconds).To(Equal(5))
		Expect(cfg.ReplyToComment).To(BeTrue())
		Expect(cfg.SendDM).To(BeTrue())
		Expect(cfg.AccessToken).To(BeEmpty())
		Expect(cfg.APIKey).To(BeEmpty())
	})

	It("merges a patch", func() {
		cfg := model.DefaultAutomationConfig(1)

		model.AutomationConfigPatch{DelaySeconds: ptr(30), SendDM: ptr(false), InstagramID: ptr("1784")}.Apply(&cfg)

		Expect(cfg.DelaySeconds).To(Equal(30))
		Expect(cfg.SendDM).To(BeFalse())
		Expect(cfg.InstagramID).To(Equal("1784"))
		Expect(cfg.ReplyToComment).To(BeTrue())
	})
})
