package service

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildsafe/compliance-doc-service/doccheck"
	"github.com/buildsafe/compliance-doc-service/dto"
)

func newTestService() *ComplianceService {
	return &ComplianceService{
		log:   zerolog.Nop(),
		rules: doccheck.DefaultRules,
		now: func() time.Time {
			return time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
		},
	}
}

func TestProcessTextInsurancePasses(t *testing.T) {
	svc := newTestService()

	text := `
		CERTIFICATE OF INSURANCE
		INSURED: Acme LLC
		POLICY NUMBER: GL-100
		EXPIRY DATE: 12/31/2099
	`

	result := svc.ProcessText(text, "coi_acme.pdf")

	assert.Equal(t, "coi_acme.pdf", result.Identifier)
	assert.Equal(t, dto.DocTypeInsurance, result.DocType)
	require.True(t, result.Fields["insured"].Present())
	assert.Equal(t, "Acme LLC", *result.Fields["insured"].Value)
	assert.Equal(t, "GL-100", *result.Fields["policy_number"].Value)
	assert.Equal(t, dto.VerdictPass, result.Verdict)
}

func TestProcessTextExpiredInsuranceFails(t *testing.T) {
	svc := newTestService()

	text := `
		CERTIFICATE OF INSURANCE
		INSURED: Acme LLC
		POLICY NUMBER: GL-100
		EXPIRY DATE: 01/01/2000
	`

	result := svc.ProcessText(text, "coi_acme.pdf")

	assert.Equal(t, dto.DocTypeInsurance, result.DocType)
	assert.Equal(t, dto.VerdictFail, result.Verdict)
}

func TestProcessTextFutureDatedInspectionFails(t *testing.T) {
	svc := newTestService()

	text := `
		EQUIPMENT INSPECTION CHECKLIST
		INSPECTOR: Jane Doe
		INSPECTION DATE: 01/01/2099
		RESULT: PASS
	`

	result := svc.ProcessText(text, "inspection.pdf")

	assert.Equal(t, dto.DocTypeInspection, result.DocType)
	assert.Equal(t, dto.VerdictFail, result.Verdict)
}

func TestProcessTextRecentInspectionPasses(t *testing.T) {
	svc := newTestService()

	text := `
		EQUIPMENT INSPECTION CHECKLIST
		INSPECTOR: Jane Doe
		INSPECTION DATE: 01/06/2024
		EQUIPMENT ID: CRN-812
		RESULT: PASS
	`

	result := svc.ProcessText(text, "inspection.pdf")

	assert.Equal(t, dto.DocTypeInspection, result.DocType)
	assert.Equal(t, dto.VerdictPass, result.Verdict)
}

func TestProcessTextEmptyInputShortCircuits(t *testing.T) {
	svc := newTestService()

	for _, text := range []string{"", "   \n\t  "} {
		result := svc.ProcessText(text, "empty.pdf")

		assert.Equal(t, "empty.pdf", result.Identifier)
		assert.Equal(t, dto.DocTypeUnknown, result.DocType)
		assert.Equal(t, dto.VerdictFail, result.Verdict)
		assert.Empty(t, result.Fields)
	}
}

func TestProcessTextUnrecognizedDocument(t *testing.T) {
	svc := newTestService()

	result := svc.ProcessText("weekly lunch menu: soup and sandwiches", "menu.pdf")

	assert.Equal(t, dto.DocTypeUnknown, result.DocType)
	assert.Equal(t, dto.VerdictUnknown, result.Verdict)
	assert.Empty(t, result.Fields)
}

func TestProcessTextTrainingUnreadableExpiryIsUnknown(t *testing.T) {
	svc := newTestService()

	text := `
		OSHA TRAINING CERTIFICATE
		WORKER NAME: Albert Hernandez
		CERTIFICATE ID: OSHA-2024-001
	`

	result := svc.ProcessText(text, "osha_card.pdf")

	assert.Equal(t, dto.DocTypeTraining, result.DocType)
	assert.Equal(t, dto.VerdictUnknown, result.Verdict)
}

type stubQRDecoder struct {
	payload string
	err     error
}

func (s *stubQRDecoder) DecodeImage(img image.Image) (string, error) {
	return s.payload, s.err
}

func TestDecodeCertificateQR(t *testing.T) {
	svc := newTestService()
	images := []image.Image{image.NewRGBA(image.Rect(0, 0, 10, 10))}

	svc.qrDecoder = &stubQRDecoder{payload: "OSHA-2024-777"}
	certID, ok := svc.decodeCertificateQR(images)
	assert.True(t, ok)
	assert.Equal(t, "OSHA-2024-777", certID)

	svc.qrDecoder = &stubQRDecoder{err: errors.New("no qr code found")}
	_, ok = svc.decodeCertificateQR(images)
	assert.False(t, ok)

	svc.qrDecoder = nil
	_, ok = svc.decodeCertificateQR(images)
	assert.False(t, ok)
}
