package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/dmitrijs2005/gophproducts/internal/client/client"
	"github.com/dmitrijs2005/gophproducts/internal/client/config"
)

type fakeAPI struct {
	token string

	pingErr error

	regUser string
	regPass []byte
	regErr  error

	loginUser string
	loginPass []byte
	loginErr  error

	created     *client.Product
	createdName string
	createdDesc *string
	createErr   error

	products []client.Product
	listErr  error

	got    *client.Product
	gotID  int64
	getErr error

	updated   *client.Product
	updatedID int64
	patch     client.ProductPatch
	updateErr error

	deletedID int64
	deleteErr error
}

var _ client.Client = (*fakeAPI)(nil)

func (f *fakeAPI) Ping(context.Context) error { return f.pingErr }

func (f *fakeAPI) Register(_ context.Context, user string, pass []byte) error {
	f.regUser, f.regPass = user, append([]byte(nil), pass...)
	return f.regErr
}

func (f *fakeAPI) Login(_ context.Context, user string, pass []byte) error {
	f.loginUser, f.loginPass = user, append([]byte(nil), pass...)
	if f.loginErr != nil {
		return f.loginErr
	}
	f.token = "tok"
	return nil
}

func (f *fakeAPI) Logout()        { f.token = "" }
func (f *fakeAPI) LoggedIn() bool { return f.token != "" }

func (f *fakeAPI) CreateProduct(_ context.Context, name string, desc *string) (*client.Product, error) {
	f.createdName, f.createdDesc = name, desc
	return f.created, f.createErr
}

func (f *fakeAPI) ListProducts(context.Context) ([]client.Product, error) {
	return f.products, f.listErr
}

func (f *fakeAPI) GetProduct(_ context.Context, id int64) (*client.Product, error) {
	f.gotID = id
	return f.got, f.getErr
}

func (f *fakeAPI) UpdateProduct(_ context.Context, id int64, patch client.ProductPatch) (*client.Product, error) {
	f.updatedID, f.patch = id, patch
	return f.updated, f.updateErr
}

func (f *fakeAPI) DeleteProduct(_ context.Context, id int64) error {
	f.deletedID = id
	return f.deleteErr
}

func newTestApp(api *fakeAPI) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &App{
		config: &config.Config{ServerEndpointAddr: "http://test"},
		api:    api,
		reader: bufio.NewReader(&bytes.Buffer{}),
		out:    out,
	}, out
}

// stubAnswers feeds getSimpleText the given answers in order.
func stubAnswers(t *testing.T, answers ...string) {
	t.Helper()
	orig := getSimpleText
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

func stubPassword(t *testing.T, pw []byte, err error) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return pw, err }
	t.Cleanup(func() { getPassword = orig })
}

func strPtr(s string) *string { return &s }
