package seed

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"rentease-backend/domain"
)

// ImportProperties loads the catalog seed file and inserts its properties.
// A non-empty collection is left untouched so repeated startups do not
// duplicate the catalog.
func ImportProperties(ctx context.Context, collection *mongo.Collection, path string, logger *logrus.Logger) error {
	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		logger.WithFields(logrus.Fields{"count": count}).Info("property catalog already seeded, skipping import")
		return nil
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var properties domain.Properties
	if err := properties.FromJSON(file); err != nil {
		return err
	}

	docs := make([]interface{}, 0, len(properties))
	for _, property := range properties {
		docs = append(docs, property)
	}

	if len(docs) == 0 {
		return nil
	}

	result, err := collection.InsertMany(ctx, docs)
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{"inserted": len(result.InsertedIDs)}).Info("property catalog seeded")
	return nil
}
