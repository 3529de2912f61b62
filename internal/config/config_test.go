package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kendru/doccmd/internal/config"
)

var _ = Describe("Config", func() {
	Describe("Load", func() {
		It("should load a minimal config, keeping unset sections at their default", func() {
			cfg, err := config.Load(filepath.Join("..", "..", "testdata", "configs", "minimal.yaml"))
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg).ToNot(BeNil())
			Expect(cfg.Scanning.Prompt).To(Equal("> "))
			Expect(cfg.Exec.Shell).To(Equal("/bin/sh"))
		})

		It("should load a full config", func() {
			cfg, err := config.Load(filepath.Join("..", "..", "testdata", "configs", "full.yaml"))
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg).ToNot(BeNil())
			Expect(cfg.Scanning.Prompt).To(Equal("$ "))
			Expect(cfg.Scanning.InlinePrefix).To(Equal("#→ "))
			Expect(cfg.Exec.Shell).To(Equal("/bin/bash"))
			Expect(cfg.Exec.BlockedPatterns).To(ContainElement("rm -rf /"))
			Expect(cfg.Diff.Bin).To(Equal("diff"))
			Expect(cfg.Report.Format).To(Equal("md"))
		})

		It("should return an error for a nonexistent file", func() {
			_, err := config.Load("nonexistent.yaml")
			Expect(err).To(HaveOccurred())
		})

		It("should return an error for invalid YAML", func() {
			tmpFile := filepath.Join(os.TempDir(), "invalid_doccmd.yaml")
			Expect(os.WriteFile(tmpFile, []byte("{{invalid yaml}}"), 0o644)).To(Succeed())
			defer os.Remove(tmpFile)

			_, err := config.Load(tmpFile)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("DefaultConfig", func() {
		It("returns the builtin CLI flag defaults", func() {
			cfg := config.DefaultConfig()
			Expect(cfg.Scanning.Prompt).To(Equal("$ "))
			Expect(cfg.Scanning.InlinePrefix).To(Equal("#→ "))
			Expect(cfg.Exec.Shell).To(Equal("/bin/sh"))
			Expect(cfg.Exec.ShellFlag).To(Equal("-c"))
			Expect(cfg.Exec.BlockedPatterns).To(BeEmpty())
			Expect(cfg.Diff.Bin).To(Equal("diff"))
			Expect(cfg.Diff.Options).To(ContainElement("-u"))
			Expect(cfg.Report.Format).To(Equal("text"))
			Expect(cfg.Logging.Level).To(Equal("info"))
		})
	})

	Describe("Validate", func() {
		It("passes for the default config", func() {
			Expect(config.Validate(config.DefaultConfig())).To(Succeed())
		})

		It("fails if the prompt is empty", func() {
			cfg := config.DefaultConfig()
			cfg.Scanning.Prompt = ""
			err := config.Validate(cfg)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("scanning.prompt"))
		})

		It("fails if the shell is empty", func() {
			cfg := config.DefaultConfig()
			cfg.Exec.Shell = ""
			err := config.Validate(cfg)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("exec.shell"))
		})

		It("fails for an unknown report format", func() {
			cfg := config.DefaultConfig()
			cfg.Report.Format = "xml"
			err := config.Validate(cfg)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("report.format"))
		})

		It("fails for an invalid log level", func() {
			cfg := config.DefaultConfig()
			cfg.Logging.Level = "verbose"
			err := config.Validate(cfg)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("logging.level"))
		})
	})
})
