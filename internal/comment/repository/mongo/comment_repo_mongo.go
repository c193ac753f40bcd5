package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shopfleet/shopfleet/internal/comment/domain"
	"github.com/shopfleet/shopfleet/internal/comment/repository"
)

// Connect opens a Mongo client with an explicit lifecycle owned by the
// caller: main connects on startup and disconnects on shutdown. No global
// client construction.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}

type commentRepo struct {
	collection *mongo.Collection
}

func NewCommentRepository(client *mongo.Client, database string) repository.CommentRepository {
	return &commentRepo{collection: client.Database(database).Collection("comments")}
}

func (r *commentRepo) Insert(ctx context.Context, comment *domain.Comment) (string, error) {
	comment.CreatedAt = time.Now().UTC()
	result, err := r.collection.InsertOne(ctx, comment)
	if err != nil {
		return "", err
	}
	oid := result.InsertedID.(primitive.ObjectID)
	comment.ID = oid
	return oid.Hex(), nil
}

func (r *commentRepo) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var comment domain.Comment
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&comment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepo) List(ctx context.Context, orderItemID uint64) ([]domain.Comment, error) {
	filter := bson.M{}
	if orderItemID != 0 {
		filter["order_item_id"] = orderItemID
	}
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []domain.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepo) UpdateContent(ctx context.Context, id, content string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"content": content}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *commentRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
