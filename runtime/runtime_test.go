package runtime

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Runtime", func() {
	Describe("Go and Wait", func() {
		It("should wait for background work to finish", func() {
			rt := &Runtime{}
			release := make(chan struct{})
			finished := make(chan struct{})
			rt.Go(func() {
				<-release
				close(finished)
			})

			short, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
			defer cancel()
			Expect(rt.Wait(short)).To(MatchError(context.DeadlineExceeded))

			close(release)
			Expect(rt.Wait(context.Background())).To(Succeed())
			Expect(finished).To(BeClosed())
		})

		It("should return at once when nothing is running", func() {
			rt := &Runtime{}
			Expect(rt.Wait(context.Background())).To(Succeed())
		})
	})

	Describe("Close", func() {
		It("should be a no-op without a database", func() {
			rt := &Runtime{}
			Expect(rt.Close(context.Background())).To(Succeed())
		})
	})
})
