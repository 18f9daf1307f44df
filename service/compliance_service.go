package service

import (
	"image"
	"io"
	"mime/multipart"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/buildsafe/compliance-doc-service/config"
	"github.com/buildsafe/compliance-doc-service/doccheck"
	"github.com/buildsafe/compliance-doc-service/dto"
)

// OCRClient recognizes text in a scanned page image.
type OCRClient interface {
	ExtractTextFromImage(img image.Image) (string, float64, error)
}

// QRDecoder reads a QR code payload out of a page image.
type QRDecoder interface {
	DecodeImage(img image.Image) (string, error)
}

// ComplianceService runs the classify -> extract -> validate pipeline over
// uploaded documents.
type ComplianceService struct {
	pdfProcessor PDFProcessor
	ocrClient    OCRClient
	qrDecoder    QRDecoder
	cfg          *config.Config
	log          zerolog.Logger
	rules        doccheck.ValidationRules
	now          func() time.Time
}

func NewComplianceService(
	pdfProcessor PDFProcessor,
	ocrClient OCRClient,
	qrDecoder QRDecoder,
	cfg *config.Config,
	log zerolog.Logger,
) *ComplianceService {
	return &ComplianceService{
		pdfProcessor: pdfProcessor,
		ocrClient:    ocrClient,
		qrDecoder:    qrDecoder,
		cfg:          cfg,
		log:          log,
		rules: doccheck.ValidationRules{
			ExpiryGraceDays:        cfg.ExpiryGraceDays,
			InspectionValidityDays: cfg.InspectionValidityDays,
		},
		now: time.Now,
	}
}

// ProcessText runs one document's extracted text through the pipeline and
// assembles its result. Empty or whitespace-only text short-circuits to an
// unknown document that fails compliance; nothing downstream sees it.
func (s *ComplianceService) ProcessText(text, identifier string) dto.DocumentResult {
	if strings.TrimSpace(text) == "" {
		s.log.Warn().Str("file", identifier).Msg("no text extracted from document")
		return dto.DocumentResult{
			Identifier: identifier,
			DocType:    dto.DocTypeUnknown,
			Fields:     dto.FieldSet{},
			Verdict:    dto.VerdictFail,
		}
	}

	docType := doccheck.Classify(text, s.log)
	fields := doccheck.Extract(text, docType, s.log)
	verdict := doccheck.Validate(fields, docType, s.now(), s.rules)

	s.log.Info().
		Str("file", identifier).
		Str("doc_type", string(docType)).
		Str("verdict", string(verdict)).
		Msg("document processed")

	return dto.DocumentResult{
		Identifier: identifier,
		DocType:    docType,
		Fields:     fields,
		Verdict:    verdict,
	}
}

// CheckDocuments processes each uploaded file independently and in
// parallel. Per-file extraction failures degrade to an unknown/fail
// result for that file; they never abort the batch.
func (s *ComplianceService) CheckDocuments(files []*multipart.FileHeader) []dto.DocumentResult {
	results := make([]dto.DocumentResult, len(files))
	var wg sync.WaitGroup

	for i, fileHeader := range files {
		wg.Add(1)
		go func(i int, fileHeader *multipart.FileHeader) {
			defer wg.Done()
			results[i] = s.checkDocument(fileHeader)
		}(i, fileHeader)
	}

	wg.Wait()
	return results
}

func (s *ComplianceService) checkDocument(fileHeader *multipart.FileHeader) dto.DocumentResult {
	identifier := fileHeader.Filename
	if identifier == "" {
		identifier = uuid.New().String()
	}

	f, err := fileHeader.Open()
	if err != nil {
		s.log.Error().Err(err).Str("file", identifier).Msg("failed to open upload")
		return s.ProcessText("", identifier)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		s.log.Error().Err(err).Str("file", identifier).Msg("failed to read upload")
		return s.ProcessText("", identifier)
	}

	text, images := s.extractDocumentText(data, identifier)
	result := s.ProcessText(text, identifier)

	// Scanned training cards often lose the printed certificate ID to OCR
	// noise while the QR code on the card still decodes cleanly.
	if result.DocType == dto.DocTypeTraining && !result.Fields["certificate_id"].Present() && len(images) > 0 {
		if certID, ok := s.decodeCertificateQR(images); ok {
			result.Fields["certificate_id"] = dto.FieldResult{Value: &certID, Confidence: 0.9}
			result.Verdict = doccheck.Validate(result.Fields, result.DocType, s.now(), s.rules)
			s.log.Info().Str("file", identifier).Str("certificate_id", certID).Msg("certificate ID recovered from QR code")
		}
	}

	return result
}

// extractDocumentText pulls the embedded text layer first and falls back
// to page-image OCR when the PDF looks scanned. The returned images are
// non-nil only on the OCR path, so callers can reuse them for QR decoding.
func (s *ComplianceService) extractDocumentText(data []byte, identifier string) (string, []image.Image) {
	text, err := s.pdfProcessor.ExtractText(data)
	if err != nil {
		s.log.Warn().Err(err).Str("file", identifier).Msg("pdf text extraction failed")
	}

	if len(strings.TrimSpace(text)) >= s.cfg.MinTextLength {
		return text, nil
	}

	s.log.Info().Str("file", identifier).Msg("minimal embedded text, attempting image-based OCR")

	images, err := s.pdfProcessor.ExtractImages(data)
	if err != nil || len(images) == 0 {
		s.log.Warn().Err(err).Str("file", identifier).Msg("failed to extract images from pdf")
		return text, nil
	}

	var combined strings.Builder
	for _, img := range images {
		pageText, conf, err := s.ocrClient.ExtractTextFromImage(img)
		if err != nil {
			s.log.Warn().Err(err).Str("file", identifier).Msg("ocr failed for a page")
			continue
		}
		s.log.Debug().Str("file", identifier).Float64("ocr_confidence", conf).Msg("ocr page done")
		combined.WriteString(pageText)
		combined.WriteString("\n")
	}

	if strings.TrimSpace(combined.String()) != "" {
		return combined.String(), images
	}
	return text, images
}

func (s *ComplianceService) decodeCertificateQR(images []image.Image) (string, bool) {
	if s.qrDecoder == nil {
		return "", false
	}
	for _, img := range images {
		payload, err := s.qrDecoder.DecodeImage(img)
		if err != nil {
			continue
		}
		payload = strings.TrimSpace(payload)
		if payload != "" {
			return payload, true
		}
	}
	return "", false
}
