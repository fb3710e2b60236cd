package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-sync-api/internal/domain"
	"github.com/jhoicas/bodega-sync-api/pkg/config"
	"github.com/jhoicas/bodega-sync-api/pkg/logger"
)

func TestDecodeReader_Latin1(t *testing.T) {
	// "Bogotá" en ISO-8859-1: á = 0xE1
	in := strings.NewReader("Bogot\xe1")
	r, err := decodeReader(in, "ISO-8859-1")
	require.NoError(t, err)
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Bogotá", string(out))
}

func TestDecodeReader_UTF8SinCambios(t *testing.T) {
	in := strings.NewReader("Bogotá")
	r, err := decodeReader(in, "")
	require.NoError(t, err)
	assert.Same(t, in, r)
}

func TestDecodeReader_Desconocido(t *testing.T) {
	_, err := decodeReader(strings.NewReader(""), "klingon")
	assert.Error(t, err)
}

func TestRun_Memoria(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bodegas.json")
	doc := "{\"warehouseID\": 1, \"name\": \"Medell\xedn\", \"warehouseData\": [{\"productData\": [{\"productID\": \"p1\", \"productName\": \"Widget\", \"productQuantity\": 3}]}]}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg := &config.Config{Store: config.StoreConfig{Driver: config.StoreMemory}}
	err := run(context.Background(), cfg, logger.Nop(), path, "iso-8859-1", false)
	require.NoError(t, err)
}

func TestRun_ArchivoInexistente(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: config.StoreMemory}}
	err := run(context.Background(), cfg, logger.Nop(), filepath.Join(t.TempDir(), "no.json"), "", false)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAlreadyLoaded)
}
