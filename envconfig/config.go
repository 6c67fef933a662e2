// config.go - Haupt-Konfigurationsfunktionen fuer axle
//
// Dieses Modul enthaelt:
// - LogLevel: Gibt Log-Level zurueck (AXLE_DEBUG)
// - NumThreads: Worker-Anzahl fuer elementweise Operationen (AXLE_NUM_THREADS)
// - ParallelThreshold: Elementzahl ab der parallel gerechnet wird (AXLE_PARALLEL_THRESHOLD)
// - Var: Environment-Variable mit Trimming lesen
//
// Weitere Konfigurationen sind ausgelagert:
// - config_utils.go: Utility-Funktionen und AsMap/Values
package envconfig

import (
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// LogLevel gibt das Log-Level zurueck
// Konfigurierbar via AXLE_DEBUG
// Werte: 0/false = INFO (Default), 1/true = DEBUG, 2 = TRACE
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("AXLE_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// NumThreads gibt die Worker-Anzahl fuer elementweise Operationen zurueck
// Konfigurierbar via AXLE_NUM_THREADS
// Default: Anzahl logischer CPUs
func NumThreads() int {
	n := Uint("AXLE_NUM_THREADS", uint(runtime.NumCPU()))()
	if n == 0 {
		return runtime.NumCPU()
	}
	return int(n)
}

// ParallelThreshold gibt die Elementzahl zurueck, ab der elementweise
// Operationen auf mehrere Goroutinen verteilt werden
// Konfigurierbar via AXLE_PARALLEL_THRESHOLD
// Default: 4096
func ParallelThreshold() int64 {
	return int64(Uint64("AXLE_PARALLEL_THRESHOLD", 4096)())
}

// Var gibt eine Environment-Variable zurueck
// Entfernt fuehrende/trailing Quotes und Leerzeichen
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}
