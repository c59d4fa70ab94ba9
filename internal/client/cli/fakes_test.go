package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/freshify/internal/client/services"
	"github.com/dmitrijs2005/freshify/internal/inventory"
	"github.com/dmitrijs2005/freshify/internal/rpc"
)

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

// newTestApp returns a logged-in online App writing to the returned buffer.
func newTestApp(auth *fakeAuth, inv *fakeInventory, input *bufio.Reader) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	if input == nil {
		input = readerFromLines()
	}
	a := &App{auth: auth, inventory: inv, reader: input, out: &out, userName: "ann@example.com", mode: ModeOnline}
	return a, &out
}

// stubText feeds answers to getSimpleText in order.
func stubText(t *testing.T, answers ...string) {
	t.Helper()
	orig := getSimpleText
	t.Cleanup(func() { getSimpleText = orig })
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	t.Cleanup(func() { getPassword = orig })
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(pw), nil }
}

type fakeAuth struct {
	regUser string
	regPass string
	regErr  error

	loginUser string
	loginErr  error

	restoreUser string
	restoreErr  error

	logoutCalled bool
	logoutErr    error

	pingErr error
}

func (f *fakeAuth) Register(_ context.Context, user string, pass []byte) error {
	f.regUser, f.regPass = user, string(pass)
	return f.regErr
}
func (f *fakeAuth) Login(_ context.Context, user string, pass []byte) error {
	f.loginUser = user
	return f.loginErr
}
func (f *fakeAuth) RestoreSession(context.Context) (string, error) {
	return f.restoreUser, f.restoreErr
}
func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}
func (f *fakeAuth) Ping(context.Context) error { return f.pingErr }
func (f *fakeAuth) Close(context.Context) error { return nil }

type fakeInventory struct {
	listing *services.Listing
	listErr error

	receipt    []inventory.PurchasedItem
	receiptErr error
	scan       *rpc.AnalyzeImageResponse
	scanErr    error
	scanPath   string
	purchased  []inventory.PurchasedItem

	saved    []inventory.ConsolidatedItem
	savedRef string
	saveErr  error

	complete    *rpc.CompleteItemResponse
	completeErr error
	waste       *rpc.WasteItemResponse

	setQty [2]int64
	decQty int
	decErr error
	expiry [2]int64
	impact *rpc.Impact
	recipe *inventory.Recipe
	focus  string
	calls  []string
}

func (f *fakeInventory) List(_ context.Context, owner string) (*services.Listing, error) {
	f.calls = append(f.calls, "list")
	return f.listing, f.listErr
}
func (f *fakeInventory) AnalyzeReceipt(_ context.Context, path string) ([]inventory.PurchasedItem, error) {
	f.calls = append(f.calls, "receipt")
	return f.receipt, f.receiptErr
}
func (f *fakeInventory) Scan(_ context.Context, path string, purchased []inventory.PurchasedItem) (*rpc.AnalyzeImageResponse, error) {
	f.calls = append(f.calls, "scan")
	f.scanPath, f.purchased = path, purchased
	return f.scan, f.scanErr
}
func (f *fakeInventory) Save(_ context.Context, ref string, items []inventory.ConsolidatedItem) ([]int64, error) {
	f.calls = append(f.calls, "save")
	f.savedRef, f.saved = ref, items
	ids := make([]int64, len(items))
	for i := range ids {
		ids[i] = int64(i + 1)
	}
	return ids, f.saveErr
}
func (f *fakeInventory) Complete(_ context.Context, id int64) (*rpc.CompleteItemResponse, error) {
	f.calls = append(f.calls, "complete")
	return f.complete, f.completeErr
}
func (f *fakeInventory) Waste(_ context.Context, id int64) (*rpc.WasteItemResponse, error) {
	f.calls = append(f.calls, "waste")
	return f.waste, nil
}
func (f *fakeInventory) SetQuantity(_ context.Context, id int64, q int) error {
	f.calls = append(f.calls, "qty")
	f.setQty = [2]int64{id, int64(q)}
	return nil
}
func (f *fakeInventory) DecrementQuantity(_ context.Context, owner string, id int64) (int, error) {
	f.calls = append(f.calls, "dec")
	return f.decQty, f.decErr
}
func (f *fakeInventory) UpdateExpiry(_ context.Context, id int64, days int) error {
	f.calls = append(f.calls, "expiry")
	f.expiry = [2]int64{id, int64(days)}
	return nil
}
func (f *fakeInventory) Impact(context.Context) (*rpc.Impact, error) {
	f.calls = append(f.calls, "impact")
	return f.impact, nil
}
func (f *fakeInventory) Recipe(_ context.Context, focus string) (*inventory.Recipe, error) {
	f.calls = append(f.calls, "recipe")
	f.focus = focus
	return f.recipe, nil
}
