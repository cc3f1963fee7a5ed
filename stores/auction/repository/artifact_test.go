package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/auctionx/goapi/base/ctx"
	"github.com/auctionx/goapi/domain"
)

func writeArtifact(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), []byte(content), 0o644))
}

func TestFsArtifactRepo(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	dir := t.TempDir()

	writeArtifact(t, dir, "DutchAuction", `{"bytecode":"0x60806040"}`)
	writeArtifact(t, dir, "EnglishAuction", `{"data":{"bytecode":{"object":"0x60806041"}}}`)
	writeArtifact(t, dir, "Empty", `{"bytecode":"0x"}`)
	writeArtifact(t, dir, "Garbage", `not json`)

	repo := NewFsArtifactRepo(dir)

	code, err := repo.Bytecode(c, "DutchAuction")
	req.NoError(err)
	req.Equal([]byte{0x60, 0x80, 0x60, 0x40}, code)

	// exporters that nest bytecode under data work too
	code, err = repo.Bytecode(c, "EnglishAuction")
	req.NoError(err)
	req.Equal([]byte{0x60, 0x80, 0x60, 0x41}, code)

	_, err = repo.Bytecode(c, "Empty")
	req.ErrorIs(err, domain.ErrArtifactMissing)

	_, err = repo.Bytecode(c, "Garbage")
	req.ErrorIs(err, domain.ErrArtifactMissing)

	_, err = repo.Bytecode(c, "NoSuchContract")
	req.ErrorIs(err, domain.ErrArtifactMissing)
}
