package repository

import (
	"context"
	"errors"
	"time"

	"movie_tracker/configs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type IAdminRepository interface {
	GetServerConfigs(ctx context.Context) (*configs.DbConfigData, error)
}

type AdminRepository struct {
	mongodb *mongo.Database
}

func NewAdminRepository(mongodb *mongo.Database) *AdminRepository {
	return &AdminRepository{mongodb: mongodb}
}

//------------------------------------------
//------------------------------------------

func (r *AdminRepository) GetServerConfigs(ctx context.Context) (*configs.DbConfigData, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var result configs.DbConfigData
	err := r.mongodb.
		Collection("configs").
		FindOne(ctx, bson.D{{Key: "title", Value: configs.DbConfigsTitle}}).
		Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}
