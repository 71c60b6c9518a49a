package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ziadkadry99/refhub/internal/db"
)

// ErrNotInDB is returned by LoadDB when the hub has not been exported.
var ErrNotInDB = errors.New("hub not found in database")

// SaveDB writes the catalog as hub name, replacing any previous export.
func SaveDB(ctx context.Context, d *db.DB, hub string, c Catalog) error {
	tx, err := d.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM hubs WHERE name = ?`, hub); err != nil {
		return fmt.Errorf("clearing hub %s: %w", hub, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO hubs (name, title, tagline) VALUES (?, ?, ?)`,
		hub, c.Title, c.Tagline,
	); err != nil {
		return fmt.Errorf("inserting hub: %w", err)
	}

	for i, sec := range c.Sections {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO sections (hub, position, id, label, icon, intro) VALUES (?, ?, ?, ?, ?, ?)`,
			hub, i, sec.ID, sec.Label, sec.Icon, sec.Intro,
		); err != nil {
			return fmt.Errorf("inserting section %s: %w", sec.ID, err)
		}
		for j, sub := range sec.Subsections {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO subsections (hub, section_pos, position, title) VALUES (?, ?, ?, ?)`,
				hub, i, j, sub.Title,
			); err != nil {
				return fmt.Errorf("inserting subsection %q: %w", sub.Title, err)
			}
			for k, e := range sub.Entries {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO entries (hub, section_pos, subsection_pos, position, title, author, type, level, url, description)
					 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
					hub, i, j, k, e.Title, e.Author, string(e.Type), string(e.Level), e.URL, e.Desc,
				); err != nil {
					return fmt.Errorf("inserting entry %q: %w", e.Title, err)
				}
			}
		}
	}

	return tx.Commit()
}

// ListDB returns the names of all hubs stored in the database, sorted.
func ListDB(ctx context.Context, d *db.DB) ([]string, error) {
	rows, err := d.QueryContext(ctx, `SELECT name FROM hubs ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing hubs: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning hub: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// LoadDB reads one hub back into a Catalog.
func LoadDB(ctx context.Context, d *db.DB, hub string) (Catalog, error) {
	var c Catalog
	err := d.QueryRowContext(ctx, `SELECT title, tagline FROM hubs WHERE name = ?`, hub).Scan(&c.Title, &c.Tagline)
	if err == sql.ErrNoRows {
		return Catalog{}, fmt.Errorf("%s: %w", hub, ErrNotInDB)
	}
	if err != nil {
		return Catalog{}, fmt.Errorf("reading hub: %w", err)
	}

	rows, err := d.QueryContext(ctx,
		`SELECT id, label, icon, intro FROM sections WHERE hub = ? ORDER BY position`, hub)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading sections: %w", err)
	}
	for rows.Next() {
		var sec Section
		if err := rows.Scan(&sec.ID, &sec.Label, &sec.Icon, &sec.Intro); err != nil {
			rows.Close()
			return Catalog{}, fmt.Errorf("scanning section: %w", err)
		}
		c.Sections = append(c.Sections, sec)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return Catalog{}, err
	}

	rows, err = d.QueryContext(ctx,
		`SELECT section_pos, title FROM subsections WHERE hub = ? ORDER BY section_pos, position`, hub)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading subsections: %w", err)
	}
	for rows.Next() {
		var secPos int
		var sub Subsection
		if err := rows.Scan(&secPos, &sub.Title); err != nil {
			rows.Close()
			return Catalog{}, fmt.Errorf("scanning subsection: %w", err)
		}
		if secPos < 0 || secPos >= len(c.Sections) {
			continue
		}
		c.Sections[secPos].Subsections = append(c.Sections[secPos].Subsections, sub)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return Catalog{}, err
	}

	rows, err = d.QueryContext(ctx,
		`SELECT section_pos, subsection_pos, title, author, type, level, url, description
		 FROM entries WHERE hub = ? ORDER BY section_pos, subsection_pos, position`, hub)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading entries: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var secPos, subPos int
		var e Entry
		var typ, level string
		if err := rows.Scan(&secPos, &subPos, &e.Title, &e.Author, &typ, &level, &e.URL, &e.Desc); err != nil {
			return Catalog{}, fmt.Errorf("scanning entry: %w", err)
		}
		e.Type = EntryType(typ)
		e.Level = Level(level)
		if secPos < 0 || secPos >= len(c.Sections) {
			continue
		}
		subs := c.Sections[secPos].Subsections
		if subPos < 0 || subPos >= len(subs) {
			continue
		}
		subs[subPos].Entries = append(subs[subPos].Entries, e)
	}
	return c, rows.Err()
}
