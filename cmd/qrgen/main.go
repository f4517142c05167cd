// Package main 为各部署环境生成系统入口二维码图片。
//
//	qrgen [-out dir] [-size 512] [-level M] [development|production|staging|all]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/student_support/pkg/qrcode"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("qrgen", flag.ContinueOnError)
	outDir := fs.String("out", ".", "output directory")
	size := fs.Int("size", qrcode.DefaultSize, "image size in pixels")
	level := fs.String("level", "M", "error correction level (L, M, Q, H)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	env := "development"
	if fs.NArg() > 0 {
		env = fs.Arg(0)
	}
	envs := []string{env}
	if env == "all" {
		envs = qrcode.EnvironmentNames()
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for _, name := range envs {
		link, err := qrcode.EnvironmentURL(name)
		if err != nil {
			return err
		}
		png, err := qrcode.Generate(link, qrcode.Options{Size: *size, Level: *level})
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		path := filepath.Join(*outDir, "system-entry-qr-"+name+".png")
		if err := os.WriteFile(path, png, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Fprintf(stdout, "%s 二维码已生成: %s (%s)\n", name, path, link)
	}
	return nil
}
