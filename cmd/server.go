package cmd

import (
	"fmt"
	"log"
	"net/http"

	"pizza-delivery/pkg/utils"
)

// APIServer starts the plain and TLS listeners on the same handler.
// The TLS listener runs only when both a certificate and key are
// configured; the plain listener always runs and blocks.
func APIServer(handler http.Handler, config *utils.Config) {
	if config.TLS.CertFile != "" && config.TLS.KeyFile != "" {
		go func() {
			addr := fmt.Sprintf(":%s", config.App.HTTPSPort)
			fmt.Printf("Server running on https://localhost%s\n", addr)

			if err := http.ListenAndServeTLS(addr, config.TLS.CertFile, config.TLS.KeyFile, handler); err != nil {
				log.Fatal("HTTPS server error:", err)
			}
		}()
	}

	addr := fmt.Sprintf(":%s", config.App.HTTPPort)
	fmt.Printf("Server running on http://localhost%s\n", addr)

	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal("Server error:", err)
	}
}
