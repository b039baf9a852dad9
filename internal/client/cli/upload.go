package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/memberdesk/internal/filex"
)

// Upload stores a local file (receipt, cheque photo, certificate) and
// prints the URL to reference it by.
func (a *App) Upload(ctx context.Context, args []string) error {
	if !a.requireAdmin() {
		return nil
	}
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: upload <path>")
		return nil
	}
	path := args[0]

	contentType, err := filex.ContentType(path)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", path, err)
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	url, err := a.uploader.Upload(ctx, filepath.Base(path), contentType, f)
	if err != nil {
		return fmt.Errorf("upload %s: %w", path, err)
	}
	fmt.Fprintln(a.out, url)
	return nil
}
