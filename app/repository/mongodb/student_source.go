package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"thesis-progress-dashboard/app/models"
)

// StudentSource reads the thesis_students collection as a record source.
type StudentSource struct {
	coll *mongo.Collection
}

func NewStudentSource(db *mongo.Database) *StudentSource {
	return &StudentSource{coll: db.Collection("thesis_students")}
}

type studentDoc struct {
	NIM         string `bson:"nim"`
	Name        string `bson:"nama"`
	Prodi       string `bson:"program_studi"`
	ThesisTitle string `bson:"judul_skripsi"`
	Advisor1    string `bson:"pembimbing1"`
	Advisor2    string `bson:"pembimbing2"`
	Reviewer    string `bson:"penelaah"`
	Status      string `bson:"status"`
}

func (r *StudentSource) Fetch(ctx context.Context) ([]models.StudentRecord, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []studentDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	records := make([]models.StudentRecord, 0, len(docs))
	for _, d := range docs {
		records = append(records, models.StudentRecord{
			NIM:         models.FlexString(d.NIM),
			Name:        d.Name,
			Prodi:       d.Prodi,
			ThesisTitle: d.ThesisTitle,
			Advisor1:    d.Advisor1,
			Advisor2:    d.Advisor2,
			Reviewer:    d.Reviewer,
			Status:      d.Status,
		})
	}
	return records, nil
}
