package mongostore

import (
	"context"
	"fmt"

	"hotel-booking/internal/domain/support"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ThreadCollection = "support_requests"

// ThreadStore persists support threads as one document each with embedded messages.
// It serves both the command side and the read side.
type ThreadStore struct {
	col *mongo.Collection
}

func NewThreadStore(db *mongo.Database) *ThreadStore {
	return &ThreadStore{col: db.Collection(ThreadCollection)}
}

func (s *ThreadStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "clientId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create support request indexes", err)
	}
	return nil
}

func (s *ThreadStore) Create(ctx context.Context, t *support.Thread) (*support.Thread, error) {
	doc := toThreadDocument(t)
	doc.ID = primitive.NewObjectID()
	if _, err := s.col.InsertOne(ctx, doc); err != nil {
		return nil, infra.WrapRepoErr("failed to create support request", err)
	}
	return doc.toDomain()
}

func (s *ThreadStore) FindByID(ctx context.Context, id string) (*support.Thread, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, infra.WrapRepoErr("support request not found", err, infra.KindNotFound)
	}
	var doc threadDocument
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, infra.WrapRepoErr("failed to find support request", err)
	}
	t, err := doc.toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("stored support request is malformed", err, infra.KindDBFailure)
	}
	return t, nil
}

func (s *ThreadStore) List(ctx context.Context, filter queries.ThreadListFilter) ([]*support.Thread, error) {
	q := bson.M{}
	if filter.ClientID != nil {
		q["clientId"] = filter.ClientID.String()
	}
	if filter.IsActive != nil {
		q["isActive"] = *filter.IsActive
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(filter.Page.Offset)).
		SetLimit(int64(filter.Page.Limit))

	cursor, err := s.col.Find(ctx, q, opts)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list support requests", err)
	}
	defer cursor.Close(ctx)

	var docs []threadDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr("failed to decode support requests", err)
	}

	out := make([]*support.Thread, 0, len(docs))
	for _, d := range docs {
		t, err := d.toDomain()
		if err != nil {
			return nil, infra.WrapRepoErr("stored support request is malformed", err, infra.KindDBFailure)
		}
		out = append(out, t)
	}
	return out, nil
}

// AppendMessage pushes one message atomically, independent of concurrent appends.
func (s *ThreadStore) AppendMessage(ctx context.Context, threadID string, msg support.Message) error {
	oid, err := primitive.ObjectIDFromHex(threadID)
	if err != nil {
		return infra.WrapRepoErr("support request not found", err, infra.KindNotFound)
	}
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{
			"$push": bson.M{"messages": toMessageDocument(msg)},
			"$inc":  bson.M{"version": 1},
		},
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append message", err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr("support request not found", nil, infra.KindNotFound)
	}
	return nil
}

// SaveReadMarks writes readAt for the given message positions in a single update,
// only if nobody changed the thread since it was loaded.
func (s *ThreadStore) SaveReadMarks(ctx context.Context, t *support.Thread, indexes []int) error {
	if len(indexes) == 0 {
		return nil
	}
	oid, err := primitive.ObjectIDFromHex(t.ID())
	if err != nil {
		return infra.WrapRepoErr("support request not found", err, infra.KindNotFound)
	}
	set := bson.M{}
	for _, i := range indexes {
		set[fmt.Sprintf("messages.%d.readAt", i)] = t.Message(i).ReadAt()
	}
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": oid, "version": t.Version()},
		bson.M{"$set": set, "$inc": bson.M{"version": 1}},
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark messages read", err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr("support request changed concurrently", nil, infra.KindConcurrentModification)
	}
	return nil
}

func (s *ThreadStore) Close(ctx context.Context, threadID string) error {
	oid, err := primitive.ObjectIDFromHex(threadID)
	if err != nil {
		return infra.WrapRepoErr("support request not found", err, infra.KindNotFound)
	}
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"isActive": false}, "$inc": bson.M{"version": 1}},
	)
	if err != nil {
		return infra.WrapRepoErr("failed to close support request", err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr("support request not found", nil, infra.KindNotFound)
	}
	return nil
}
