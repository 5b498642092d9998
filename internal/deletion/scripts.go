package deletion

import (
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// powerShellLiteral quotes s as a single-quoted PowerShell string. Inside
// single quotes the only special character is the quote itself.
func powerShellLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// encodePowerShell renders script for -EncodedCommand: base64 over UTF-16LE
func encodePowerShell(script string) (string, error) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	raw, err := enc.String(script)
	if err != nil {
		return "", fmt.Errorf("encoding powershell script: %w", err)
	}
	return base64.StdEncoding.EncodeToString([]byte(raw)), nil
}

// powerShellArgs is the argv for running script in a hidden, non-interactive powershell
func powerShellArgs(script string) ([]string, error) {
	encoded, err := encodePowerShell(script)
	if err != nil {
		return nil, err
	}
	return []string{"-NoProfile", "-NonInteractive", "-WindowStyle", "Hidden", "-EncodedCommand", encoded}, nil
}

// elevatePowerShell wraps inner in a Start-Process call that re-launches
// powershell with RunAs and waits for it. The inner script travels base64
// encoded, so the outer command never has to quote the target path.
func elevatePowerShell(inner string) (string, error) {
	encoded, err := encodePowerShell(inner)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"Start-Process -FilePath powershell -Verb RunAs -WindowStyle Hidden -Wait -ArgumentList %s,%s,%s,%s",
		powerShellLiteral("-NoProfile"),
		powerShellLiteral("-NonInteractive"),
		powerShellLiteral("-EncodedCommand"),
		powerShellLiteral(encoded),
	), nil
}

// elevateBatch runs a cmd script file with RunAs and waits for it
func elevateBatch(scriptPath string) string {
	return fmt.Sprintf(
		"Start-Process -FilePath cmd -Verb RunAs -WindowStyle Hidden -Wait -ArgumentList %s,%s",
		powerShellLiteral("/c"),
		powerShellLiteral(`"`+scriptPath+`"`),
	)
}

// removeItemScript force-removes the literal path
func removeItemScript(target Target) string {
	var b strings.Builder
	b.WriteString("$ErrorActionPreference = 'Stop'\n")
	b.WriteString("Remove-Item -LiteralPath ")
	b.WriteString(powerShellLiteral(target.Path))
	if target.IsDir {
		b.WriteString(" -Recurse")
	}
	b.WriteString(" -Force\n")
	return b.String()
}

// directDeleteScript removes the path through .NET without touching ownership
func directDeleteScript(target Target) string {
	if target.IsDir {
		return fmt.Sprintf("[System.IO.Directory]::Delete(%s, $true)\n", powerShellLiteral(target.Path))
	}
	return fmt.Sprintf("[System.IO.File]::Delete(%s)\n", powerShellLiteral(target.Path))
}

// batchQuote double-quotes a path for a .bat file. Percent signs are doubled
// so they are not expanded as variables.
func batchQuote(path string) (string, error) {
	if strings.ContainsAny(path, "\"\r\n") {
		return "", fmt.Errorf("path %q cannot be quoted for a batch script", path)
	}
	return `"` + strings.ReplaceAll(path, "%", "%%") + `"`, nil
}

// takeOwnershipBatch grants administrators full control of target and force-removes it
func takeOwnershipBatch(target Target) (string, error) {
	p, err := batchQuote(target.Path)
	if err != nil {
		return "", err
	}
	lines := []string{"@echo off"}
	if target.IsDir {
		lines = append(lines,
			"takeown /f "+p+" /r /d y",
			"icacls "+p+" /grant administrators:F /t",
			"rmdir /s /q "+p,
		)
	} else {
		lines = append(lines,
			"takeown /f "+p,
			"icacls "+p+" /grant administrators:F",
			"del /f /q "+p,
		)
	}
	return strings.Join(lines, "\r\n") + "\r\n", nil
}

// posixQuote single-quotes s for /bin/sh
func posixQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// takeOwnershipShell is the unix counterpart of takeOwnershipBatch. It is run
// through sudo, so uid is the owner the tree is handed to before rm.
func takeOwnershipShell(target Target, uid int) string {
	p := posixQuote(target.Path)
	recursive := ""
	if target.IsDir {
		recursive = "-R "
	}
	lines := []string{
		"#!/bin/sh",
		"set -e",
		fmt.Sprintf("if command -v chattr >/dev/null 2>&1; then chattr %s-i %s 2>/dev/null || true; fi", recursive, p),
		fmt.Sprintf("chown %s%d -- %s", recursive, uid, p),
		fmt.Sprintf("chmod %su+rwX -- %s", recursive, p),
		fmt.Sprintf("rm -rf -- %s", p),
	}
	return strings.Join(lines, "\n") + "\n"
}
