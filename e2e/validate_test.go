package e2e_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("validate", func() {
	It("accepts a directory of valid agents", func() {
		dir := tempStore()
		writeAgent(dir, "reviewer.yaml", "Code Reviewer")
		writeAgent(dir, "writer.yaml", "Writer")

		out := agentmanOK(dir, "validate", "agents")
		Expect(out).To(ContainSubstring("valid (2 file(s))"))
	})

	It("rejects an agent with an unknown tag and logs it", func() {
		dir := tempStore()
		writeFile(dir, "agents/bad.yaml", `name: Bad
emoji: B
description: Has a bogus tag.
system_message: Do things.
label_color: '#112233'
text_color: '#FFFFFF'
is_default: false
tags:
  - no-such-tag
`)

		out, err := agentman(dir, "validate", "agents")
		Expect(err).To(HaveOccurred())
		Expect(out).To(ContainSubstring("no-such-tag"))

		log := readFile(dir, "sync_errors.log")
		Expect(log).To(ContainSubstring("bad.yaml"))
		Expect(log).To(MatchRegexp(`\[\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z\]`))
	})

	It("emits GitHub annotations with --format github", func() {
		dir := tempStore()
		writeFile(dir, "agents/broken.yaml", "name: [unclosed\n")

		out, err := agentman(dir, "--format", "github", "validate", "agents")
		Expect(err).To(HaveOccurred())
		Expect(out).To(ContainSubstring("::error file=agents/broken.yaml::"))
	})

	It("normalizes field order and preserves literal style", func() {
		dir := tempStore()
		writeFile(dir, "agents/messy.yaml", `tags:
  - programming
is_default: false
name: Messy
system_message: |
  Short but literal.
emoji: M
text_color: '#FFFFFF'
description: Out of order on purpose.
label_color: '#112233'
`)

		agentmanOK(dir, "validate", "agents/messy.yaml")

		content := readFile(dir, "agents/messy.yaml")
		Expect(content).To(HavePrefix("name: Messy\n"))
		// The authored literal block style survives even though the
		// message is short and single-line.
		Expect(content).To(ContainSubstring("system_message: |"))
	})

	It("validates a single file target", func() {
		dir := tempStore()
		writeAgent(dir, "solo.yaml", "Solo")

		out := agentmanOK(dir, "validate", "agents/solo.yaml")
		Expect(out).To(ContainSubstring("valid (1 file(s))"))
	})
})
