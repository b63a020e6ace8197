package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symbol-inventory/internal/config"
)

func writeManifest(t *testing.T, names string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "names.txt")
	require.NoError(t, os.WriteFile(path, []byte(names), 0o644))

	return path
}

func TestRun_ManifestText(t *testing.T) {
	manifest := writeManifest(t, "com.example.Outer$1\ncom/example/Outer$Inner.class\n")

	var stdout, stderr bytes.Buffer
	code := runWithArgs(context.Background(), []string{"-manifest", manifest, "-format", "text"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "package com\npackage example\nclass Outer\nclass Outer.Inner\n", stdout.String())
	assert.Contains(t, stderr.String(), "inventory complete")
}

func TestRun_JSONToFile(t *testing.T) {
	manifest := writeManifest(t, "a.b.C\na.b.1$D\n")
	out := filepath.Join(t.TempDir(), "report.json")

	var stdout, stderr bytes.Buffer
	code := runWithArgs(context.Background(), []string{"-manifest", manifest, "-format", "json", "-o", out, "-workers", "2"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var report struct {
		Packages []string `json:"packages"`
		Classes  []string `json:"classes"`
		Skipped  int      `json:"skipped"`
	}
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, []string{"a", "b"}, report.Packages)
	assert.Equal(t, []string{"C"}, report.Classes)
	assert.Equal(t, 1, report.Skipped)
}

func TestRun_ConfigFile(t *testing.T) {
	manifest := writeManifest(t, ".x.Y\n")
	cfgPath := filepath.Join(t.TempDir(), "inventory.yaml")
	cfg := "sources:\n  - kind: manifest\n    paths: [" + manifest + "]\nskip_empty_segments: true\noutput: text\nlog_level: warn\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	var stdout, stderr bytes.Buffer
	code := runWithArgs(context.Background(), []string{"-config", cfgPath}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "package x\nclass Y\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_NoSource(t *testing.T) {
	t.Setenv(EnvClasspath, "")

	var stdout, stderr bytes.Buffer
	code := runWithArgs(context.Background(), nil, &stdout, &stderr)

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "no source configured")
}

func TestRun_ClasspathFromEnv(t *testing.T) {
	classes := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(classes, "org", "acme"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(classes, "org", "acme", "App$Config.class"), []byte("x"), 0o644))

	missing := filepath.Join(t.TempDir(), "gone.jar")
	t.Setenv(EnvClasspath, classes+string(os.PathListSeparator)+missing)

	var stdout, stderr bytes.Buffer
	code := runWithArgs(context.Background(), []string{"-format", "text"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "package acme\npackage org\nclass App.Config\n", stdout.String())
}

func TestRun_SourceFailure(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runWithArgs(context.Background(), []string{"-manifest", filepath.Join(t.TempDir(), "missing.txt")}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "cannot enumerate names")
	assert.Contains(t, stderr.String(), "source enumeration failed")
}

func TestRun_BadFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 2, runWithArgs(context.Background(), []string{"-nope"}, &stdout, &stderr))
	assert.Equal(t, 2, runWithArgs(context.Background(), []string{"extra"}, &stdout, &stderr))
	assert.Equal(t, 2, runWithArgs(context.Background(), []string{"-manifest", "x", "-format", "xml"}, &stdout, &stderr))
	assert.Equal(t, 0, runWithArgs(context.Background(), []string{"-h"}, &stdout, &stderr))
}

func TestRun_OutputFileError(t *testing.T) {
	manifest := writeManifest(t, "a.B\n")
	out := filepath.Join(t.TempDir(), "missing-dir", "report.yaml")

	var stdout, stderr bytes.Buffer
	code := runWithArgs(context.Background(), []string{"-manifest", manifest, "-o", out}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "error writing output")
}

func TestWriteOutput_File(t *testing.T) {
	manifest := writeManifest(t, "a.B\n")
	out := filepath.Join(t.TempDir(), "report.txt")

	var stdout, stderr bytes.Buffer
	code := runWithArgs(context.Background(), []string{"-manifest", manifest, "-format", "text", "-o", out}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "package a\nclass B\n", string(data))
}

func TestRun_PrintConfig(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runWithArgs(context.Background(), []string{"-classpath", "lib/a.jar", "-workers", "3", "-print-config"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	cfg, err := config.Parse(stdout.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
	require.Len(t, cfg.Sources, 1)
	assert.Equal(t, config.KindClasspath, cfg.Sources[0].Kind)
	assert.Equal(t, []string{"lib/a.jar"}, cfg.Sources[0].Paths)
	assert.Empty(t, stderr.String())
}
