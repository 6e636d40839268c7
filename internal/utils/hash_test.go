package utils_test

import (
	"bytes"
	"errors"

	"github.com/draganm/txgen/internal/utils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// shortWriter accepts at most limit bytes and then fails
type shortWriter struct {
	limit int
	buf   bytes.Buffer
}

func (s *shortWriter) Write(p []byte) (int, error) {
	room := s.limit - s.buf.Len()
	if room >= len(p) {
		return s.buf.Write(p)
	}
	s.buf.Write(p[:room])
	return room, errors.New("disk full")
}

var _ = Describe("DigestWriter", func() {
	It("hashes and counts everything passed through", func() {
		var buf bytes.Buffer
		dw := utils.NewDigestWriter(&buf)

		_, err := dw.Write([]byte("type,client,tx,amount\n"))
		Expect(err).NotTo(HaveOccurred())
		_, err = dw.Write([]byte("deposit,0,0,1\n"))
		Expect(err).NotTo(HaveOccurred())

		Expect(dw.SHA256()).To(Equal(sha256Hex(buf.String())))
		Expect(dw.Count()).To(Equal(int64(buf.Len())))
	})

	It("only accounts for bytes the underlying writer accepted", func() {
		sw := &shortWriter{limit: 4}
		dw := utils.NewDigestWriter(sw)

		n, err := dw.Write([]byte("deposit"))
		Expect(err).To(MatchError("disk full"))
		Expect(n).To(Equal(4))
		Expect(dw.Count()).To(Equal(int64(4)))

		Expect(dw.SHA256()).To(Equal(sha256Hex("depo")))
	})

	It("reports the digest of empty input", func() {
		dw := utils.NewDigestWriter(&bytes.Buffer{})
		Expect(dw.SHA256()).To(Equal("e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"))
	})
})
