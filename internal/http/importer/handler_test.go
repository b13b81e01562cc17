package importer_test

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	importhttp "github.com/fornada/fornada/internal/http/importer"
	"github.com/fornada/fornada/internal/importer"
	"github.com/fornada/fornada/internal/invoice"
	"github.com/fornada/fornada/internal/matching"
	"github.com/fornada/fornada/internal/purchase"
)

const nfeXML = `<?xml version="1.0" encoding="UTF-8"?>
<nfeProc><NFe><infNFe>
  <emit><CNPJ>12345678000199</CNPJ><xNome>Moinho Paulista Ltda</xNome></emit>
  <det nItem="1"><prod><xProd>FARINHA</xProd><qCom>1</qCom><vUnCom>89.90</vUnCom></prod></det>
</infNFe></NFe></nfeProc>`

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func multipartUpload(t *testing.T, filename string, data []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/import/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return req
}

func TestHandler_Upload_Errors(t *testing.T) {
	type testCase struct {
		name     string
		filename string
		data     []byte
		setup    func(suppliers *importer.MockSupplierLister, ocr *importer.MockTextExtractor)
		wantCode int
		wantBody string
	}

	tests := []testCase{
		{
			name:     "Unsupported",
			filename: "notes.txt",
			data:     []byte("just some text"),
			wantCode: http.StatusUnsupportedMediaType,
		},
		{
			name:     "InvalidXML",
			filename: "nota.xml",
			data:     []byte("<nfeProc><NFe>"),
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "OCRFailureIsBadGateway",
			filename: "nota.png",
			data:     pngHeader,
			setup: func(_ *importer.MockSupplierLister, ocr *importer.MockTextExtractor) {
				ocr.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("quota exceeded"))
			},
			wantCode: http.StatusBadGateway,
			wantBody: "text extraction failed: quota exceeded",
		},
		{
			name:     "DatabaseFailureIsInternal",
			filename: "nota.xml",
			data:     []byte(nfeXML),
			setup: func(suppliers *importer.MockSupplierLister, _ *importer.MockTextExtractor) {
				suppliers.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: "listing suppliers: db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			suppliers := importer.NewMockSupplierLister(ctrl)
			ocr := importer.NewMockTextExtractor(ctrl)

			if tt.setup != nil {
				tt.setup(suppliers, ocr)
			}

			svc := importer.NewService(
				importer.NewMockRepository(ctrl),
				suppliers,
				importer.NewMockIngredientLister(ctrl),
				purchase.NewService(nil),
				ocr,
				matching.NewMatcher(matching.DefaultThreshold),
				invoice.DefaultPatterns(),
			)

			r := chi.NewRouter()
			r.Route("/import", importhttp.NewHandler(svc).Routes)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, multipartUpload(t, tt.filename, tt.data))

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}
