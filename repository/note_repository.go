package repository

import (
	"context"
	"errors"

	"rooftop-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNoteNotFound = errors.New("note not found")

type NoteRepositoryInterface interface {
	SaveNote(note models.Note) error
	FindNotes() ([]models.Note, error)
	FindNoteByID(id string) (models.Note, error)
	DeleteNoteByID(id string) error
}

type NoteRepository struct {
	collection *mongo.Collection
}

func NewNoteRepository(collection *mongo.Collection) *NoteRepository {
	return &NoteRepository{collection: collection}
}

// SaveNote inserts a fully built note. Images are embedded in the note
// document, so the note and its images are persisted in one atomic write.
func (r *NoteRepository) SaveNote(note models.Note) error {
	_, err := r.collection.InsertOne(context.Background(), note)
	return err
}

func (r *NoteRepository) FindNotes() ([]models.Note, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(context.Background(), bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	notes := []models.Note{}
	if err = cursor.All(context.Background(), &notes); err != nil {
		return nil, err
	}
	for i := range notes {
		notes[i].NormalizeImages()
	}
	return notes, nil
}

func (r *NoteRepository) FindNoteByID(id string) (models.Note, error) {
	var note models.Note
	err := r.collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&note)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		return models.Note{}, err
	}
	note.NormalizeImages()
	return note, nil
}

// DeleteNoteByID removes the note document; embedded images go with it.
func (r *NoteRepository) DeleteNoteByID(id string) error {
	result, err := r.collection.DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNoteNotFound
	}
	return nil
}
