package e2e_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("schema", func() {
	It("prints a JSON Schema for agent files", func() {
		dir := tempStore()

		out := agentmanOK(dir, "schema")

		var schema map[string]any
		Expect(json.Unmarshal([]byte(out), &schema)).To(Succeed())
		Expect(schema["title"]).To(Equal("agent definition"))
		Expect(schema["required"]).To(ContainElement("system_message"))
	})
})

var _ = Describe("tags and categories", func() {
	It("lists the tag vocabulary", func() {
		dir := tempStore()

		out := agentmanOK(dir, "tags")
		Expect(out).To(ContainSubstring("programming"))
		Expect(out).To(ContainSubstring("Code-focused agents"))
	})

	It("suggests tags for an agent name from examples", func() {
		dir := tempStore()

		out := agentmanOK(dir, "tags", "Code Reviewer")
		Expect(out).To(Equal("programming"))
	})

	It("lists the category vocabulary from the sibling default", func() {
		dir := tempStore()

		out := agentmanOK(dir, "categories")
		Expect(out).To(ContainSubstring("development"))
	})

	It("fails fast on a malformed vocabulary file", func() {
		dir := tempStore()
		writeFile(dir, "tags.json", "{broken")

		out, err := agentman(dir, "validate", "agents")
		Expect(err).To(HaveOccurred())
		Expect(out).To(ContainSubstring("parsing tags file"))
	})
})
