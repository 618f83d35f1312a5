package server_test

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"starksnap/internal/http/server"
)

var _ = Describe("HTTPServer", func() {
	It("stops with ErrServerClosed after shutdown", func() {
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NotFoundHandler(), "0")

		errChan := srv.Run()
		Consistently(errChan, "100ms").ShouldNot(Receive())

		Expect(srv.Shutdown()).To(Succeed())
		Eventually(errChan).Should(Receive(MatchError(http.ErrServerClosed)))
	})
})
