package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	"github.com/auctionx/goapi/base/ctx"
	"github.com/auctionx/goapi/domain"
	"github.com/auctionx/goapi/domain/auction"
)

// fsArtifactRepo serves compiled contract bytecode from a directory of
// <ContractName>.json artifacts exported by the contracts build.
type fsArtifactRepo struct {
	dir string
}

func NewFsArtifactRepo(dir string) auction.ArtifactRepo {
	return &fsArtifactRepo{dir: dir}
}

// artifact is the subset of the compiler output we read. Bytecode appears
// either at the top level or nested under data, depending on the exporter.
type artifact struct {
	Bytecode string `json:"bytecode"`
	Data     *struct {
		Bytecode struct {
			Object string `json:"object"`
		} `json:"bytecode"`
	} `json:"data"`
}

func (im *fsArtifactRepo) Bytecode(c ctx.Ctx, name string) ([]byte, error) {
	file := filepath.Join(im.dir, name+".json")
	raw, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, xerrors.Errorf("%w: %s", domain.ErrArtifactMissing, name)
		}
		c.WithField("err", err).Error("failed to read artifact")
		return nil, err
	}

	var art artifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return nil, xerrors.Errorf("%w: %s: malformed artifact", domain.ErrArtifactMissing, name)
	}
	code := art.Bytecode
	if code == "" && art.Data != nil {
		code = art.Data.Bytecode.Object
	}
	code = strings.TrimSpace(code)
	if code == "" || code == "0x" {
		return nil, xerrors.Errorf("%w: %s: artifact has no bytecode", domain.ErrArtifactMissing, name)
	}
	return common.FromHex(code), nil
}
