package controllers

import (
	"errors"
	"sort"
	"sync"

	"rooftop-server/models"
	"rooftop-server/repository"
)

type mockNoteRepository struct {
	data     map[string]models.Note
	mu       sync.RWMutex
	failList bool
}

func newMockNoteRepository() *mockNoteRepository {
	return &mockNoteRepository{
		data: make(map[string]models.Note),
	}
}

func (m *mockNoteRepository) SaveNote(note models.Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if note.Content == "fail" {
		return errors.New("failed to save note")
	}
	m.data[note.ID] = note
	return nil
}

func (m *mockNoteRepository) FindNotes() ([]models.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.failList {
		return nil, errors.New("failed to find notes")
	}

	notes := []models.Note{}
	for _, note := range m.data {
		note.NormalizeImages()
		notes = append(notes, note)
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})
	return notes, nil
}

func (m *mockNoteRepository) FindNoteByID(id string) (models.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	note, ok := m.data[id]
	if !ok {
		return models.Note{}, repository.ErrNoteNotFound
	}
	note.NormalizeImages()
	return note, nil
}

func (m *mockNoteRepository) DeleteNoteByID(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.data[id]; !ok {
		return repository.ErrNoteNotFound
	}
	delete(m.data, id)
	return nil
}
