package api

import (
	"errors"
	"strings"
	"testing/iotest"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/ippcode/core"
)

var _ = Describe("Driver", func() {
	var (
		mockCtrl   *gomock.Controller
		mockWriter *MockWriter
		driver     *driverImpl
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockWriter = NewMockWriter(mockCtrl)

		driver = NewDriverBuilder().Build("Driver").(*driverImpl)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should write the document in one call", func() {
		var written []byte
		mockWriter.EXPECT().
			Write(gomock.Any()).
			DoAndReturn(func(p []byte) (int, error) {
				written = append([]byte(nil), p...)
				return len(p), nil
			}).
			Times(1)

		err := driver.Translate(strings.NewReader(".IPPcode24\nBREAK\n"), mockWriter)

		Expect(err).NotTo(HaveOccurred())
		Expect(string(written)).To(HavePrefix(`<?xml version="1.0" encoding="UTF-8"?>`))
		Expect(string(written)).To(ContainSubstring(`opcode="BREAK"`))
	})

	It("should not write anything when a line fails", func() {
		// No Write expectation: any call fails the test.
		src := ".IPPcode24\nDEFVAR GF@a\nDEFVAR b\n"

		err := driver.Translate(strings.NewReader(src), mockWriter)

		Expect(core.ExitCode(err)).To(Equal(23))
	})

	It("should not write anything without a header", func() {
		err := driver.Translate(strings.NewReader("BREAK\n"), mockWriter)

		Expect(core.ExitCode(err)).To(Equal(21))
	})

	It("should report write failures as output errors", func() {
		mockWriter.EXPECT().
			Write(gomock.Any()).
			Return(0, errors.New("broken pipe"))

		err := driver.Translate(strings.NewReader(".IPPcode24\n"), mockWriter)

		Expect(err).To(MatchError(core.ErrOutput))
		Expect(core.ExitCode(err)).To(Equal(12))
	})

	It("should report read failures as input errors", func() {
		err := driver.Translate(iotest.ErrReader(errors.New("boom")), mockWriter)

		Expect(err).To(MatchError(core.ErrInput))
		Expect(core.ExitCode(err)).To(Equal(11))
	})

	Context("state machine", func() {
		var t *translation

		BeforeEach(func() {
			t = &translation{
				driverImpl: driver,
				state:      stateAwaitHeader,
				doc:        nil,
			}
		})

		It("should stay in AwaitHeader on blank and comment lines", func() {
			Expect(t.feed(1, "")).To(Succeed())
			Expect(t.feed(2, "  # comment")).To(Succeed())
			Expect(t.state).To(Equal(stateAwaitHeader))
		})

		It("should move to Processing on the header", func() {
			Expect(t.feed(1, ".IPPcode24 # header")).To(Succeed())
			Expect(t.state).To(Equal(stateProcessing))
		})

		It("should reject a header with extra tokens", func() {
			err := t.feed(3, ".IPPcode24 extra")

			Expect(err).To(MatchError(core.ErrHeader))
			Expect(err.(*core.LineError).Line).To(Equal(3))
		})

		It("should fail at the end of input without a header", func() {
			_, err := t.finish()

			Expect(err).To(MatchError(core.ErrHeader))
		})

		It("should name its states", func() {
			Expect(stateAwaitHeader.String()).To(Equal("AwaitHeader"))
			Expect(stateProcessing.String()).To(Equal("Processing"))
			Expect(stateDone.String()).To(Equal("Done"))
		})
	})
})

var _ = Describe("DriverBuilder", func() {
	It("should panic without an instruction set", func() {
		Expect(func() {
			NewDriverBuilder().WithISA(nil).Build("Driver")
		}).To(Panic())
	})

	It("should panic without a header", func() {
		Expect(func() {
			NewDriverBuilder().WithHeader("").Build("Driver")
		}).To(Panic())
	})
})
