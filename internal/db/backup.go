package db

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

// Backup copies the database file to dest. The design is single-process
// and synchronous, so no write can be in flight while this runs.
func Backup(dest string) error {
	if dbPath == "" {
		return fmt.Errorf("database not initialized")
	}
	if err := copyFile(dbPath, dest); err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}
	log.Info().Str("dest", dest).Msg("backup written")
	return nil
}

// Restore overwrites the database file with the backup at src and
// reopens the connection. All current data is replaced.
func Restore(src string) error {
	if dbPath == "" {
		return fmt.Errorf("database not initialized")
	}
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("backup file: %w", err)
	}
	if err := Close(); err != nil {
		return fmt.Errorf("closing database before restore: %w", err)
	}
	if err := copyFile(src, dbPath); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}
	log.Info().Str("src", src).Msg("database restored")
	return Initialize(dbPath)
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
