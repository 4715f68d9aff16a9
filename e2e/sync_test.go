package e2e_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type indexDoc struct {
	Version     string `json:"version"`
	TotalAgents int    `json:"total_agents"`
	Files       []struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		CreatedAt string `json:"created_at"`
	} `json:"files"`
}

func readIndex(dir string) indexDoc {
	var idx indexDoc
	err := json.Unmarshal([]byte(readFile(dir, "index.json")), &idx)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return idx
}

var _ = Describe("sync", func() {
	It("builds an index sorted by id", func() {
		dir := tempStore()
		writeAgent(dir, "zulu.yaml", "Zulu")
		writeAgent(dir, "alpha.yaml", "Alpha")

		out := agentmanOK(dir, "sync", "agents", "--index", "index.json")
		Expect(out).To(ContainSubstring("Total agents: 2"))
		Expect(out).To(ContainSubstring("New agents added: 2"))

		idx := readIndex(dir)
		Expect(idx.Version).To(Equal("1.0"))
		Expect(idx.TotalAgents).To(Equal(2))
		Expect(idx.Files[0].ID).To(Equal("alpha"))
		Expect(idx.Files[1].ID).To(Equal("zulu"))
	})

	It("keeps created_at stable across runs", func() {
		dir := tempStore()
		writeAgent(dir, "alpha.yaml", "Alpha")

		agentmanOK(dir, "sync", "agents", "--index", "index.json")
		first := readIndex(dir)

		// Change the description; id and created_at must not move.
		writeFile(dir, "agents/alpha.yaml", `name: Alpha
emoji: A
description: A different description now.
system_message: |
  You are Alpha.
label_color: '#112233'
text_color: '#FFFFFF'
is_default: false
tags:
  - programming
`)
		out := agentmanOK(dir, "sync", "agents", "--index", "index.json")
		Expect(out).To(ContainSubstring("Existing agents updated: 1"))

		second := readIndex(dir)
		Expect(second.Files[0].CreatedAt).To(Equal(first.Files[0].CreatedAt))
	})

	It("reports a no-op on an unchanged directory", func() {
		dir := tempStore()
		writeAgent(dir, "alpha.yaml", "Alpha")

		agentmanOK(dir, "sync", "agents", "--index", "index.json")
		out := agentmanOK(dir, "sync", "agents", "--index", "index.json")
		Expect(out).To(ContainSubstring("New agents added: 0"))
		Expect(out).To(ContainSubstring("Existing agents updated: 0"))
	})

	It("skips failing files but still indexes the rest", func() {
		dir := tempStore()
		writeAgent(dir, "alpha.yaml", "Alpha")
		writeFile(dir, "agents/broken.yaml", "name: [unclosed\n")

		out, err := agentman(dir, "sync", "agents", "--index", "index.json")
		Expect(err).To(HaveOccurred(), "exit code must be nonzero when any file failed")
		Expect(out).To(ContainSubstring("Files with errors: 1"))
		Expect(out).To(ContainSubstring("See sync_errors.log for error details"))

		idx := readIndex(dir)
		Expect(idx.TotalAgents).To(Equal(1))
		Expect(idx.Files[0].ID).To(Equal("alpha"))
	})

	It("fails without touching the index when no file is valid", func() {
		dir := tempStore()
		writeFile(dir, "agents/broken.yaml", "name: [unclosed\n")

		_, err := agentman(dir, "sync", "agents", "--index", "index.json")
		Expect(err).To(HaveOccurred())
		Expect(readFileErr(dir, "index.json")).To(HaveOccurred())
	})
})
