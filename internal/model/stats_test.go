package model_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"replyflow.app/api/internal/model"
)

var _ = Describe("ComputeStats", func() {
	It("returns zeros and no last activity for an empty set", func() {
		stats := model.ComputeStats(nil)

		Expect(stats.TotalTriggers).To(BeZero())
		Expect(stats.MessagesSent).To(BeZero())
		Expect(stats.ActiveKeywords).To(BeZero())
		Expect(stats.LastActivity).To(BeNil())
	})

	It("sums triggers, counts enabled keywords and picks the newest creation time", func() {
		older := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
		newer := older.Add(48 * time.Hour)

		stats := model.ComputeStats([]model.Keyword{
			{ID: 1, Word: "quero", Enabled: true, TriggersCount: 127, CreatedAt: older},
			{ID: 2, Word: "link", Enabled: true, TriggersCount: 84, CreatedAt: newer},
			{ID: 3, Word: "preco", Enabled: false, TriggersCount: 9, CreatedAt: older},
		})

		Expect(stats.TotalTriggers).To(Equal(220))
		Expect(stats.MessagesSent).To(Equal(stats.TotalTriggers))
		Expect(stats.ActiveKeywords).To(Equal(2))
		Expect(stats.LastActivity).NotTo(BeNil())
		Expect(*stats.LastActivity).To(Equal(newer))
	})

	It("does not alias the keyword's timestamp", func() {
		created := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
		keywords := []model.Keyword{{ID: 1, CreatedAt: created}}

		stats := model.ComputeStats(keywords)
		keywords[0].CreatedAt = created.Add(time.Hour)

		Expect(*stats.LastActivity).To(Equal(created))
	})
})
