package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arloliu/evseq/archive"
	"github.com/arloliu/evseq/dataset"
)

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

func loadDataset(path string) (*dataset.Dataset, error) {
	if path == "" {
		return nil, errors.New("input path is required")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var ds *dataset.Dataset
	if isJSON(path) {
		ds, err = archive.ReadJSON(f)
	} else {
		ds, err = archive.Read(f)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return ds, nil
}

func (a *app) saveDataset(path string, ds *dataset.Dataset) (err error) {
	if path == "" {
		return errors.New("output path is required")
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	if isJSON(path) {
		err = archive.WriteJSON(f, ds)
	} else {
		comp, perr := a.cfg.CompressionType()
		if perr != nil {
			return perr
		}
		err = archive.Write(f, ds, archive.WithCompression(comp))
	}
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return nil
}
