package contract_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"replyflow.app/api/internal/contract"
)

var _ = Describe("Schemas", func() {
	It("uses stored column names for keyword rows", func() {
		doc := contract.Schemas()

		Expect(doc.Keyword.Title).To(Equal("keyword"))
		_, ok := doc.Keyword.Properties.Get("button_text")
		Expect(ok).To(BeTrue())
		_, ok = doc.Keyword.Properties.Get("triggers_count")
		Expect(ok).To(BeTrue())
		_, ok = doc.Keyword.Properties.Get("ButtonText")
		Expect(ok).To(BeFalse())
	})

	It("requires every config column", func() {
		doc := contract.Schemas()

		Expect(doc.AutomationConfig.Required).To(ContainElements("delay_seconds", "reply_to_comment", "send_dm"))
	})

	It("does not require the optional trace id on change events", func() {
		doc := contract.Schemas()

		Expect(doc.ChangeEvent.Required).To(ContainElements("user_id", "entity", "action"))
		Expect(doc.ChangeEvent.Required).NotTo(ContainElement("trace_id"))
	})

	It("renders inline schemas without references", func() {
		out, err := contract.MarshalIndent()
		Expect(err).NotTo(HaveOccurred())

		var decoded map[string]map[string]any
		Expect(json.Unmarshal(out, &decoded)).To(Succeed())
		Expect(decoded).To(HaveKey("keyword"))
		Expect(decoded["keyword"]).NotTo(HaveKey("$ref"))
		Expect(decoded["keyword"]["additionalProperties"]).To(BeFalse())
	})
})
