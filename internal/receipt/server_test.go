package receipt

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
)

func newMockScanner() *mockScanner {
	return &mockScanner{}
}

// uploadRequest builds a multipart upload for the given file
func uploadRequest(url, fieldName, filename string, data []byte) (*http.Request, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", url, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req, nil
}

var _ = Describe("Server", func() {
	var (
		db          *mockDB
		storage     *mockStorage
		scanner     *mockScanner
		service     *Service
		server      *Server
		auth        BasicAuth
		ghttpServer *ghttp.Server
	)

	setupServer := func() {
		if ghttpServer != nil {
			ghttpServer.Close()
		}
		server = NewServerWithMux(service, auth, http.NewServeMux())
		ghttpServer = ghttp.NewServer()
		ghttpServer.AppendHandlers(server.ServeHTTP)
	}

	BeforeEach(func() {
		db = newMockDB()
		storage = newMockStorage()
		scanner = newMockScanner()
		service = NewService(db, scanner, storage)
		auth = BasicAuth{}
		setupServer()
	})

	AfterEach(func() {
		if ghttpServer != nil {
			ghttpServer.Close()
		}
	})

	Describe("handleListReceipts", func() {
		When("receipts exist", func() {
			BeforeEach(func() {
				db.receipts["id1"] = &Receipt{ID: "id1", StoreName: "Coles"}
				db.receipts["id2"] = &Receipt{ID: "id2", StoreName: "Woolworths"}
			})

			It("should return all receipts as JSON", func() {
				resp, err := http.Get(ghttpServer.URL() + "/api/receipts")
				Expect(err).NotTo(HaveOccurred())
				defer resp.Body.Close()
				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				Expect(resp.Header.Get("Content-Type")).To(Equal("application/json"))

				var receipts []*Receipt
				Expect(json.NewDecoder(resp.Body).Decode(&receipts)).NotTo(HaveOccurred())
				Expect(receipts).To(HaveLen(2))
			})
		})

		When("no receipts exist", func() {
			It("should return an empty array", func() {
				resp, err := http.Get(ghttpServer.URL() + "/api/receipts")
				Expect(err).NotTo(HaveOccurred())
				defer resp.Body.Close()
				body, err := io.ReadAll(resp.Body)
				Expect(err).NotTo(HaveOccurred())
				Expect(string(body)).To(MatchJSON("[]"))
			})
		})
	})

	Describe("handleUploadReceipt", func() {
		When("the upload scans and parses cleanly", func() {
			BeforeEach(func() {
				scanner.lines = []string{
					"Coles Broadway",
					"03/02/2025",
					"Description",
					"Milk 2L 4.50",
					"TOTAL",
					"4.50",
				}
			})

			It("should return the parsed receipt with status Created", func() {
				req, err := uploadRequest(ghttpServer.URL()+"/api/receipts", "file", "receipt.pdf", []byte("pdf data"))
				Expect(err).NotTo(HaveOccurred())
				resp, err := http.DefaultClient.Do(req)
				Expect(err).NotTo(HaveOccurred())
				defer resp.Body.Close()
				Expect(resp.StatusCode).To(Equal(http.StatusCreated))

				var receipt Receipt
				Expect(json.NewDecoder(resp.Body).Decode(&receipt)).NotTo(HaveOccurred())
				Expect(receipt.StoreName).To(Equal("Coles Broadway"))
				Expect(receipt.Date).To(Equal("03/02/2025"))
				Expect(receipt.TotalAmount).To(HaveValue(Equal(4.50)))
				Expect(receipt.Items).To(HaveLen(1))
				Expect(receipt.Items[0].Name).To(Equal("Milk"))
			})
		})

		When("scanning fails", func() {
			BeforeEach(func() {
				scanner.scanErr = errors.New("model unavailable")
			})

			It("should return status Bad Request with a JSON error", func() {
				req, err := uploadRequest(ghttpServer.URL()+"/api/receipts", "file", "receipt.pdf", []byte("pdf data"))
				Expect(err).NotTo(HaveOccurred())
				resp, err := http.DefaultClient.Do(req)
				Expect(err).NotTo(HaveOccurred())
				defer resp.Body.Close()
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))

				var errBody map[string]string
				Expect(json.NewDecoder(resp.Body).Decode(&errBody)).NotTo(HaveOccurred())
				Expect(errBody["error"]).To(ContainSubstring("scanning receipt"))
			})
		})

		When("no file field is present", func() {
			It("should return status Bad Request", func() {
				req, err := uploadRequest(ghttpServer.URL()+"/api/receipts", "wrong-field", "receipt.pdf", []byte("pdf data"))
				Expect(err).NotTo(HaveOccurred())
				resp, err := http.DefaultClient.Do(req)
				Expect(err).NotTo(HaveOccurred())
				defer resp.Body.Close()
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("handleGetReceipt", func() {
		When("the receipt exists", func() {
			BeforeEach(func() {
				db.receipts["id1"] = &Receipt{ID: "id1", StoreName: "Coles"}
			})

			It("should return the receipt", func() {
				resp, err := http.Get(ghttpServer.URL() + "/api/receipts/id1")
				Expect(err).NotTo(HaveOccurred())
				defer resp.Body.Close()
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				var receipt Receipt
				Expect(json.NewDecoder(resp.Body).Decode(&receipt)).NotTo(HaveOccurred())
				Expect(receipt.StoreName).To(Equal("Coles"))
			})
		})

		When("the receipt does not exist", func() {
			It("should return status Not Found", func() {
				resp, err := http.Get(ghttpServer.URL() + "/api/receipts/missing")
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
				resp.Body.Close()
			})
		})
	})

	Describe("handleGetReceiptFile", func() {
		When("the file exists", func() {
			BeforeEach(func() {
				db.receipts["id1"] = &Receipt{
					ID:          "id1",
					Filename:    "id1_receipt.pdf",
					ContentType: "application/pdf",
				}
				storage.files["id1_receipt.pdf"] = []byte("original bytes")
			})

			It("should return the original document", func() {
				resp, err := http.Get(ghttpServer.URL() + "/api/receipts/id1/file")
				Expect(err).NotTo(HaveOccurred())
				defer resp.Body.Close()
				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				Expect(resp.Header.Get("Content-Type")).To(Equal("application/pdf"))

				body, err := io.ReadAll(resp.Body)
				Expect(err).NotTo(HaveOccurred())
				Expect(body).To(Equal([]byte("original bytes")))
			})
		})

		When("the receipt does not exist", func() {
			It("should return status Not Found", func() {
				resp, err := http.Get(ghttpServer.URL() + "/api/receipts/missing/file")
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
				resp.Body.Close()
			})
		})
	})

	Describe("handleDeleteReceipt", func() {
		When("the receipt exists", func() {
			BeforeEach(func() {
				db.receipts["id1"] = &Receipt{ID: "id1", Filename: "id1_receipt.pdf"}
				storage.files["id1_receipt.pdf"] = []byte("data")
			})

			It("should return status No Content and remove the receipt", func() {
				req, err := http.NewRequest("DELETE", ghttpServer.URL()+"/api/receipts/id1", nil)
				Expect(err).NotTo(HaveOccurred())
				resp, err := http.DefaultClient.Do(req)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusNoContent))
				resp.Body.Close()

				Expect(db.receipts).NotTo(HaveKey("id1"))
			})
		})

		When("the receipt does not exist", func() {
			It("should return status Internal Server Error", func() {
				req, err := http.NewRequest("DELETE", ghttpServer.URL()+"/api/receipts/missing", nil)
				Expect(err).NotTo(HaveOccurred())
				resp, err := http.DefaultClient.Do(req)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusInternalServerError))
				resp.Body.Close()
			})
		})
	})

	Describe("handleListProfiles", func() {
		It("should return the registered profile names", func() {
			resp, err := http.Get(ghttpServer.URL() + "/api/profiles")
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var body map[string][]string
			Expect(json.NewDecoder(resp.Body).Decode(&body)).NotTo(HaveOccurred())
			Expect(body["profiles"]).To(ContainElements("coles", "woolworths"))
		})
	})

	Describe("basic auth", func() {
		BeforeEach(func() {
			auth = BasicAuth{Username: "user", Password: "pass"}
			setupServer()
		})

		When("credentials are missing", func() {
			It("should return status Unauthorized", func() {
				resp, err := http.Get(ghttpServer.URL() + "/api/receipts")
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
				Expect(resp.Header.Get("WWW-Authenticate")).To(ContainSubstring("Basic"))
				resp.Body.Close()
			})
		})

		When("credentials are valid", func() {
			It("should allow the request", func() {
				req, err := http.NewRequest("GET", ghttpServer.URL()+"/api/receipts", nil)
				Expect(err).NotTo(HaveOccurred())
				req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("user:pass")))
				resp, err := http.DefaultClient.Do(req)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				resp.Body.Close()
			})
		})

		When("credentials are wrong", func() {
			It("should return status Unauthorized", func() {
				req, err := http.NewRequest("GET", ghttpServer.URL()+"/api/receipts", nil)
				Expect(err).NotTo(HaveOccurred())
				req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("user:wrong")))
				resp, err := http.DefaultClient.Do(req)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
				resp.Body.Close()
			})
		})
	})
})
