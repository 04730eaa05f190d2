package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/plume-labs/plume-cli/internal/core/domain"
	"github.com/plume-labs/plume-cli/internal/core/ports/driven"
)

// projectStore implements driven.ProjectStore.
type projectStore struct {
	store *Store
}

var _ driven.ProjectStore = (*projectStore)(nil)

// sectionColumns maps section names to their table columns. Patch builds its
// UPDATE from this map, so only recognised sections can ever be written.
var sectionColumns = map[domain.SectionName]string{
	domain.SectionEssentials: "essentials",
	domain.SectionTimeline:   "timeline",
	domain.SectionPeople:     "people",
	domain.SectionPhotos:     "photos",
}

// Save stores or updates a whole project.
func (s *projectStore) Save(ctx context.Context, project domain.Project) error {
	sections, err := marshalSections(&project)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if project.CreatedAt.IsZero() {
		project.CreatedAt = now
	}
	project.UpdatedAt = now

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO projects (id, owner_id, created_at, updated_at, essentials, timeline, people, photos)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			owner_id = excluded.owner_id,
			updated_at = excluded.updated_at,
			essentials = excluded.essentials,
			timeline = excluded.timeline,
			people = excluded.people,
			photos = excluded.photos
	`, project.ID, project.OwnerID, project.CreatedAt, project.UpdatedAt,
		sections[domain.SectionEssentials], sections[domain.SectionTimeline],
		sections[domain.SectionPeople], sections[domain.SectionPhotos])

	if err != nil {
		return fmt.Errorf("saving project: %w", err)
	}
	return nil
}

// Get retrieves a project by ID.
func (s *projectStore) Get(ctx context.Context, id string) (*domain.Project, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, owner_id, created_at, updated_at, essentials, timeline, people, photos
		FROM projects WHERE id = ?
	`, id)

	project, err := scanProject(row)
	if err != nil {
		return nil, err
	}
	return project, nil
}

// Patch writes only the sections named in the patch, as a single UPDATE over
// the matching columns. Sibling sections are never touched.
func (s *projectStore) Patch(ctx context.Context, id string, patch domain.SectionPatch) error {
	if err := patch.Validate(); err != nil {
		return err
	}

	setClauses := make([]string, 0, len(patch)+1)
	args := make([]any, 0, len(patch)+2)
	for _, name := range domain.AllSectionNames() {
		section, ok := patch[name]
		if !ok {
			continue
		}
		column, ok := sectionColumns[name]
		if !ok {
			return fmt.Errorf("section %q: %w", name, domain.ErrUnknownSection)
		}
		value, err := json.Marshal(section)
		if err != nil {
			return fmt.Errorf("marshalling %s section: %w", name, err)
		}
		setClauses = append(setClauses, column+" = ?")
		args = append(args, string(value))
	}

	setClauses = append(setClauses, "updated_at = ?")
	args = append(args, time.Now().UTC(), id)

	query := "UPDATE projects SET " + strings.Join(setClauses, ", ") + " WHERE id = ?"
	result, err := s.store.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("patching project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("patching project: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a project.
func (s *projectStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

// List returns all projects, most recently created first.
func (s *projectStore) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, owner_id, created_at, updated_at, essentials, timeline, people, photos
		FROM projects ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

// scanner abstracts sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProject(row scanner) (*domain.Project, error) {
	var project domain.Project
	var essentialsJSON, timelineJSON, peopleJSON, photosJSON string
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(&project.ID, &project.OwnerID, &createdAt, &updatedAt,
		&essentialsJSON, &timelineJSON, &peopleJSON, &photosJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	if createdAt.Valid {
		project.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		project.UpdatedAt = updatedAt.Time
	}

	if err := json.Unmarshal([]byte(essentialsJSON), &project.Essentials); err != nil {
		return nil, fmt.Errorf("unmarshalling essentials: %w", err)
	}
	if err := json.Unmarshal([]byte(timelineJSON), &project.Timeline); err != nil {
		return nil, fmt.Errorf("unmarshalling timeline: %w", err)
	}
	if err := json.Unmarshal([]byte(peopleJSON), &project.People); err != nil {
		return nil, fmt.Errorf("unmarshalling people: %w", err)
	}
	if err := json.Unmarshal([]byte(photosJSON), &project.Photos); err != nil {
		return nil, fmt.Errorf("unmarshalling photos: %w", err)
	}

	return &project, nil
}

func marshalSections(project *domain.Project) (map[domain.SectionName]string, error) {
	out := make(map[domain.SectionName]string, 4)
	for _, name := range domain.AllSectionNames() {
		section, err := project.Section(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(section)
		if err != nil {
			return nil, fmt.Errorf("marshalling %s section: %w", name, err)
		}
		out[name] = string(value)
	}
	return out, nil
}
