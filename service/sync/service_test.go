package sync

import (
	"context"
	"errors"
	"strings"
	"testing"

	"remiks.GO/model/product"
)

type stubRemote struct {
	authCalls   int
	authErr     error
	submitCalls int
	submitErr   error
	serviceErrs []string

	gotChannel Channel
	gotToken   string
	gotPayload []byte
}

func (s *stubRemote) Authenticate(ctx context.Context) (string, error) {
	s.authCalls++
	if s.authErr != nil {
		return "", s.authErr
	}
	return "test-token", nil
}

func (s *stubRemote) Submit(ctx context.Context, ch Channel, payload []byte, token string) ([]string, error) {
	s.submitCalls++
	s.gotChannel = ch
	s.gotToken = token
	s.gotPayload = payload
	return s.serviceErrs, s.submitErr
}

type stubArchiver struct {
	saveErr   error
	saved     map[string][]byte
	logged    []string
	logErrErr error
}

func (s *stubArchiver) SavePayload(prefix string, data []byte) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	if s.saved == nil {
		s.saved = make(map[string][]byte)
	}
	s.saved[prefix] = data
	return "payloads/payload_" + prefix + "_test.json", nil
}

func (s *stubArchiver) LogErrors(errs []string) error {
	s.logged = append(s.logged, errs...)
	return s.logErrErr
}

func TestRunProductSyncEmptySourceSkipsRemote(t *testing.T) {
	remote := &stubRemote{}
	svc := NewService(remote, &stubArchiver{})

	_, err := svc.RunProductSync(context.Background(), nil, AssembleOptions{Channel: ChannelExcel})
	if !errors.Is(err, ErrNoRows) {
		t.Fatalf("err = %v, want ErrNoRows", err)
	}
	if remote.authCalls != 0 || remote.submitCalls != 0 {
		t.Errorf("remote was called: auth=%d submit=%d", remote.authCalls, remote.submitCalls)
	}
}

func TestRunProductSync(t *testing.T) {
	remote := &stubRemote{}
	archiver := &stubArchiver{}
	svc := NewService(remote, archiver)

	result, err := svc.RunProductSync(context.Background(), productRows(), AssembleOptions{
		Channel: ChannelExcel,
		Year:    2026,
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Products != 1 {
		t.Errorf("products = %d", result.Products)
	}
	if result.PayloadPath == "" {
		t.Error("payload path not set")
	}
	if remote.gotChannel != ChannelExcel || remote.gotToken != "test-token" {
		t.Errorf("submit got %q / %q", remote.gotChannel, remote.gotToken)
	}
	// The archived payload is the submitted payload, byte for byte.
	if string(archiver.saved["excel_to_remiks"]) != string(remote.gotPayload) {
		t.Error("archived payload differs from submitted payload")
	}
}

func TestRunProductSyncArchiveFailureIsWarning(t *testing.T) {
	remote := &stubRemote{}
	svc := NewService(remote, &stubArchiver{saveErr: errors.New("disk full")})

	result, err := svc.RunProductSync(context.Background(), productRows(), AssembleOptions{Channel: ChannelExcel})
	if err != nil {
		t.Fatal(err)
	}
	if remote.submitCalls != 1 {
		t.Error("submit skipped after archive failure")
	}
	if len(result.Warnings) == 0 || !strings.Contains(result.Warnings[0], "disk full") {
		t.Errorf("warnings = %v", result.Warnings)
	}
}

func TestRunProductSyncAuthFailure(t *testing.T) {
	remote := &stubRemote{authErr: errors.New("401")}
	svc := NewService(remote, &stubArchiver{})

	_, err := svc.RunProductSync(context.Background(), productRows(), AssembleOptions{Channel: ChannelExcel})
	if err == nil || !strings.Contains(err.Error(), "authenticate") {
		t.Fatalf("err = %v", err)
	}
	if remote.submitCalls != 0 {
		t.Error("submit called after failed auth")
	}
}

func TestRunStockSyncServiceErrors(t *testing.T) {
	remote := &stubRemote{serviceErrs: []string{"sku A rejected"}}
	archiver := &stubArchiver{}
	svc := NewService(remote, archiver)

	rows := []Row{{"SKU": "A", "SIZE": "140", "QTY": 3, "RETAIL_PRICE": 100.0}}
	result, err := svc.RunStockSync(context.Background(), rows)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.ServiceErrors) != 1 {
		t.Errorf("service errors = %v", result.ServiceErrors)
	}
	if len(archiver.logged) != 1 || archiver.logged[0] != "sku A rejected" {
		t.Errorf("logged = %v", archiver.logged)
	}
	if remote.gotChannel != ChannelStock {
		t.Errorf("channel = %q", remote.gotChannel)
	}
	if _, ok := archiver.saved["excel_stock"]; !ok {
		t.Error("stock payload not archived under excel_stock")
	}
}

func TestRunStockUpdate(t *testing.T) {
	remote := &stubRemote{}
	archiver := &stubArchiver{}
	svc := NewService(remote, archiver)

	prior := []product.Record{{SKU: "A", Type: "simple", NetRetailPrice: 100, SalePrice: 80, InvoicePrice: 53.333}}
	rows := []Row{
		{"SKU": "A", "SIZE": "140", "QTY": 9},
		{"SKU": "X", "SIZE": "M", "QTY": 1},
	}
	result, err := svc.RunStockUpdate(context.Background(), rows, prior, "Bambini-10-GLAVNI MAGACIN")
	if err != nil {
		t.Fatal(err)
	}
	if result.Products != 1 {
		t.Errorf("products = %d", result.Products)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "X") {
		t.Errorf("warnings = %v", result.Warnings)
	}
	if _, ok := archiver.saved["stock_update"]; !ok {
		t.Error("payload not archived under stock_update")
	}
}

func TestRunStockUpdateNoKnownSKUs(t *testing.T) {
	remote := &stubRemote{}
	svc := NewService(remote, &stubArchiver{})

	rows := []Row{{"SKU": "X", "SIZE": "M", "QTY": 1}}
	_, err := svc.RunStockUpdate(context.Background(), rows, nil, "")
	if !errors.Is(err, ErrNoRows) {
		t.Fatalf("err = %v, want ErrNoRows", err)
	}
	if remote.authCalls != 0 {
		t.Error("remote called with nothing to send")
	}
}
