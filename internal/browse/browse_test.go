package browse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FranLegon/drive-transfer/internal/model"
)

type fakePrompter struct {
	selects  []int
	confirms []bool
}

func (p *fakePrompter) Input(string) (string, error) { return "", nil }

func (p *fakePrompter) Select(_ string, n int) (int, error) {
	v := p.selects[0]
	p.selects = p.selects[1:]
	return v, nil
}

func (p *fakePrompter) Confirm(string) bool {
	v := p.confirms[0]
	p.confirms = p.confirms[1:]
	return v
}

// fakeRclone serves a scripted sequence of listings per remote.
type fakeRclone struct {
	listings map[model.Remote][][]string
	lsfCalls int
}

func (f *fakeRclone) Version(context.Context) error        { return nil }
func (f *fakeRclone) ListRemotes(context.Context) []string { return nil }

func (f *fakeRclone) ConfigCreate(context.Context, string, string) error { return nil }

func (f *fakeRclone) Lsf(_ context.Context, remote model.Remote) []string {
	f.lsfCalls++
	seq := f.listings[remote]
	if len(seq) == 0 {
		return nil
	}
	out := seq[0]
	f.listings[remote] = seq[1:]
	return out
}

func (f *fakeRclone) Mkdir(context.Context, model.Remote, string) error { return nil }

func (f *fakeRclone) Transfer(context.Context, model.TransferRequest) error { return nil }

func TestSelectFolder(t *testing.T) {
	rc := &fakeRclone{listings: map[model.Remote][][]string{
		"alpha": {{"Docs/", "Photos/"}},
	}}
	prompter := &fakePrompter{selects: []int{2}}
	browser := NewBrowser(rc, prompter)

	folder, err := browser.SelectFolder(context.Background(), "alpha")
	require.NoError(t, err)
	assert.Equal(t, "Photos/", folder)
}

func TestSelectFolderRetriesEmptyListing(t *testing.T) {
	rc := &fakeRclone{listings: map[model.Remote][][]string{
		"alpha": {nil, {"Docs/"}},
	}}
	prompter := &fakePrompter{confirms: []bool{true}, selects: []int{1}}
	browser := NewBrowser(rc, prompter)

	folder, err := browser.SelectFolder(context.Background(), "alpha")
	require.NoError(t, err)
	assert.Equal(t, "Docs/", folder)
	assert.Equal(t, 2, rc.lsfCalls)
}

func TestSelectFolderAbortsWhenRetryDeclined(t *testing.T) {
	rc := &fakeRclone{listings: map[model.Remote][][]string{}}
	prompter := &fakePrompter{confirms: []bool{true, false}}
	browser := NewBrowser(rc, prompter)

	_, err := browser.SelectFolder(context.Background(), "alpha")
	assert.ErrorIs(t, err, ErrAborted)
	assert.Equal(t, 2, rc.lsfCalls, "one listing per retry round")
}
