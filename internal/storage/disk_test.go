package storage_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"avatarhub/internal/storage"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

var _ = Describe("Disk", func() {
	var (
		disk    *storage.Disk
		base    string
		uploads string
		ctx     context.Context
	)

	BeforeEach(func() {
		var err error
		base = GinkgoT().TempDir()
		uploads = filepath.Join(base, "uploads")
		ctx = context.Background()

		disk, err = storage.NewDisk(map[storage.Area]string{
			storage.Uploads:     uploads,
			storage.UserUploads: filepath.Join(base, "useruploads"),
			storage.Generated:   filepath.Join(base, "generated"),
		})
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("NewDisk", func() {
		It("should create every area directory", func() {
			for _, dir := range []string{"uploads", "useruploads", "generated"} {
				info, err := os.Stat(filepath.Join(base, dir))
				Expect(err).NotTo(HaveOccurred())
				Expect(info.IsDir()).To(BeTrue())
			}
		})
	})

	Describe("Save", func() {
		var (
			name    string
			content io.Reader
			path    string
			written int64
			err     error
		)

		BeforeEach(func() {
			name = "avatar.png"
			content = strings.NewReader("\x89PNG\r\n\x1a\n")
		})

		JustBeforeEach(func() {
			path, written, err = disk.Save(ctx, storage.Uploads, name, content)
		})

		When("the name is valid", func() {
			It("should write the bytes verbatim", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(path).To(Equal(filepath.Join(uploads, "avatar.png")))
				Expect(written).To(Equal(int64(8)))

				data, readErr := os.ReadFile(path)
				Expect(readErr).NotTo(HaveOccurred())
				Expect(data).To(Equal([]byte("\x89PNG\r\n\x1a\n")))
			})

			It("should not leave temporary files behind", func() {
				entries, readErr := os.ReadDir(uploads)
				Expect(readErr).NotTo(HaveOccurred())
				Expect(entries).To(HaveLen(1))
				Expect(entries[0].Name()).To(Equal("avatar.png"))
			})
		})

		When("a file with the same name exists", func() {
			BeforeEach(func() {
				Expect(os.WriteFile(filepath.Join(uploads, "avatar.png"), []byte("old"), 0o644)).To(Succeed())
			})

			It("should overwrite it", func() {
				Expect(err).NotTo(HaveOccurred())
				data, readErr := os.ReadFile(path)
				Expect(readErr).NotTo(HaveOccurred())
				Expect(data).To(Equal([]byte("\x89PNG\r\n\x1a\n")))
			})
		})

		When("the name escapes the area", func() {
			BeforeEach(func() {
				name = "../escape.png"
			})

			It("should reject it", func() {
				Expect(err).To(MatchError(storage.ErrInvalidName))
				_, statErr := os.Stat(filepath.Join(base, "escape.png"))
				Expect(os.IsNotExist(statErr)).To(BeTrue())
			})
		})

		When("the name is empty", func() {
			BeforeEach(func() {
				name = ""
			})

			It("should reject it", func() {
				Expect(err).To(MatchError(storage.ErrInvalidName))
			})
		})

		When("reading the content fails", func() {
			BeforeEach(func() {
				content = failingReader{}
			})

			It("should return the error and keep the area clean", func() {
				Expect(err).To(MatchError(ContainSubstring("connection reset")))
				entries, readErr := os.ReadDir(uploads)
				Expect(readErr).NotTo(HaveOccurred())
				Expect(entries).To(BeEmpty())
			})
		})

		When("the context is cancelled", func() {
			BeforeEach(func() {
				var cancel context.CancelFunc
				ctx, cancel = context.WithCancel(ctx)
				cancel()
			})

			It("should not write anything", func() {
				Expect(err).To(MatchError(context.Canceled))
			})
		})
	})

	Describe("Open", func() {
		BeforeEach(func() {
			Expect(os.MkdirAll(filepath.Join(uploads, "cats"), 0o755)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(uploads, "cats", "tom.png"), []byte("tom"), 0o644)).To(Succeed())
		})

		It("should open files inside categories", func() {
			file, err := disk.Open(storage.Uploads, "cats/tom.png")
			Expect(err).NotTo(HaveOccurred())
			defer file.Close()

			data, err := io.ReadAll(file)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal("tom"))
		})

		It("should report missing files as not found", func() {
			_, err := disk.Open(storage.Uploads, "cats/jerry.png")
			Expect(err).To(MatchError(storage.ErrNotFound))
		})

		It("should report directories as not found", func() {
			_, err := disk.Open(storage.Uploads, "cats")
			Expect(err).To(MatchError(storage.ErrNotFound))
		})

		It("should refuse paths outside the area", func() {
			_, err := disk.Open(storage.Uploads, "../useruploads/x.png")
			Expect(err).To(MatchError(storage.ErrNotFound))
		})

		It("should refuse unknown areas", func() {
			_, err := disk.Open(storage.Area("tmp"), "x.png")
			Expect(err).To(MatchError(storage.ErrUnknownArea))
		})
	})

	Describe("Categories", func() {
		BeforeEach(func() {
			Expect(os.MkdirAll(filepath.Join(uploads, "A", "nested"), 0o755)).To(Succeed())
			Expect(os.MkdirAll(filepath.Join(uploads, "B"), 0o755)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(uploads, "A", "x.png"), []byte("x"), 0o644)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(uploads, "A", "nested", "deep.png"), []byte("d"), 0o644)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(uploads, "loose.png"), []byte("l"), 0o644)).To(Succeed())
		})

		It("should list first level directories and their files", func() {
			categories, err := disk.Categories(storage.Uploads)
			Expect(err).NotTo(HaveOccurred())
			Expect(categories).To(Equal([]storage.Category{
				{Name: "A", Files: []string{"x.png"}},
				{Name: "B", Files: []string{}},
			}))
		})
	})
})
