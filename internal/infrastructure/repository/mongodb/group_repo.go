package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"counselconnect/internal/domain/contract"
	"counselconnect/internal/domain/entity"
)

// GroupRepository stores groups and their membership rows. The
// memberships collection is authoritative; the arrays embedded in the
// group document mirror it and are only written inside the same
// session as the membership row they track.
type GroupRepository struct {
	collection  *mongo.Collection
	memberships *mongo.Collection
}

var _ contract.IGroupRepository = (*GroupRepository)(nil)

func NewGroupRepository(db *mongo.Database) *GroupRepository {
	return &GroupRepository{
		collection:  db.Collection("groups"),
		memberships: db.Collection("memberships"),
	}
}

// CreateGroupWithCreator inserts the group and the creator's admin
// membership row as one unit.
func (r *GroupRepository) CreateGroupWithCreator(ctx context.Context, group *entity.Group, membership *entity.Membership) error {
	err := inTransaction(ctx, r.collection.Database().Client(), func(sc mongo.SessionContext) error {
		if _, err := r.collection.InsertOne(sc, group); err != nil {
			return err
		}
		_, err := r.memberships.InsertOne(sc, membership)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}
	return nil
}

func (r *GroupRepository) GetGroupByID(ctx context.Context, groupID string) (*entity.Group, error) {
	var group entity.Group
	err := r.collection.FindOne(ctx, bson.M{"_id": groupID}).Decode(&group)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, contract.ErrGroupNotFound
		}
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepository) GetGroups(ctx context.Context, opts *contract.GroupFilterOptions) ([]*entity.Group, int64, error) {
	filter := bson.M{}
	if !opts.IncludeBanned {
		filter["is_banned"] = false
	}
	if opts.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": opts.Search, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": opts.Search, "$options": "i"}},
		}
	}
	if len(opts.Tags) > 0 {
		filter["tags"] = bson.M{"$in": opts.Tags}
	}
	if opts.MemberID != nil {
		filter["members"] = *opts.MemberID
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count groups: %w", err)
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((opts.Page - 1) * opts.PageSize)).
		SetLimit(int64(opts.PageSize)).
		SetProjection(bson.M{"messages": 0})
	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch groups: %w", err)
	}
	defer cursor.Close(ctx)

	var groups []*entity.Group
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, 0, err
	}
	return groups, total, nil
}

// AddMember inserts the membership row, adds the user to the members
// array and appends the join notice, atomically.
func (r *GroupRepository) AddMember(ctx context.Context, groupID string, membership *entity.Membership, systemMessage entity.Message) error {
	err := inTransaction(ctx, r.collection.Database().Client(), func(sc mongo.SessionContext) error {
		if _, err := r.memberships.InsertOne(sc, membership); err != nil {
			return err
		}
		filter := bson.M{"_id": groupID}
		update := bson.M{
			"$addToSet": bson.M{"members": membership.UserID},
			"$push":     bson.M{"messages": systemMessage},
			"$set":      bson.M{"updated_at": time.Now().UTC()},
		}
		result, err := r.collection.UpdateOne(sc, filter, update)
		if err != nil {
			return err
		}
		if result.MatchedCount == 0 {
			return contract.ErrGroupNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}

// RemoveMember deletes the user's membership row, pulls the user from
// the group arrays, optionally promotes promoteUserID to admin, and
// appends the departure notices, atomically.
func (r *GroupRepository) RemoveMember(ctx context.Context, groupID, userID, promoteUserID string, systemMessages []entity.Message) error {
	err := inTransaction(ctx, r.collection.Database().Client(), func(sc mongo.SessionContext) error {
		if _, err := r.memberships.DeleteOne(sc, bson.M{"group_id": groupID, "user_id": userID}); err != nil {
			return err
		}

		filter := bson.M{"_id": groupID}
		update := bson.M{
			"$pull": bson.M{"members": userID, "admins": userID},
			"$push": bson.M{"messages": bson.M{"$each": systemMessages}},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		}
		result, err := r.collection.UpdateOne(sc, filter, update)
		if err != nil {
			return err
		}
		if result.MatchedCount == 0 {
			return contract.ErrGroupNotFound
		}

		if promoteUserID == "" {
			return nil
		}
		if _, err := r.collection.UpdateOne(sc, filter, bson.M{
			"$addToSet": bson.M{"admins": promoteUserID},
		}); err != nil {
			return err
		}
		_, err = r.memberships.UpdateOne(sc,
			bson.M{"group_id": groupID, "user_id": promoteUserID},
			bson.M{"$set": bson.M{"role": entity.MembershipRoleAdmin}},
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}

// DeleteGroupCascade removes the group and every membership row for it.
func (r *GroupRepository) DeleteGroupCascade(ctx context.Context, groupID string) error {
	err := inTransaction(ctx, r.collection.Database().Client(), func(sc mongo.SessionContext) error {
		result, err := r.collection.DeleteOne(sc, bson.M{"_id": groupID})
		if err != nil {
			return err
		}
		if result.DeletedCount == 0 {
			return contract.ErrGroupNotFound
		}
		_, err = r.memberships.DeleteMany(sc, bson.M{"group_id": groupID})
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	return nil
}

func (r *GroupRepository) AppendMessage(ctx context.Context, groupID string, message entity.Message) error {
	filter := bson.M{"_id": groupID}
	update := bson.M{
		"$push": bson.M{"messages": message},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return contract.ErrGroupNotFound
	}
	return nil
}

func (r *GroupRepository) GetMembership(ctx context.Context, groupID, userID string) (*entity.Membership, error) {
	var membership entity.Membership
	err := r.memberships.FindOne(ctx, bson.M{"group_id": groupID, "user_id": userID}).Decode(&membership)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, contract.ErrMembershipNotFound
		}
		return nil, err
	}
	return &membership, nil
}

func (r *GroupRepository) GetMembershipsByUser(ctx context.Context, userID string) ([]*entity.Membership, error) {
	cursor, err := r.memberships.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch memberships: %w", err)
	}
	defer cursor.Close(ctx)

	var memberships []*entity.Membership
	if err := cursor.All(ctx, &memberships); err != nil {
		return nil, err
	}
	return memberships, nil
}

func (r *GroupRepository) GetMembershipsByGroup(ctx context.Context, groupID string) ([]*entity.Membership, error) {
	opts := options.Find().SetSort(bson.D{{Key: "joined_at", Value: 1}})
	cursor, err := r.memberships.Find(ctx, bson.M{"group_id": groupID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch memberships: %w", err)
	}
	defer cursor.Close(ctx)

	var memberships []*entity.Membership
	if err := cursor.All(ctx, &memberships); err != nil {
		return nil, err
	}
	return memberships, nil
}

func (r *GroupRepository) SetGroupBanned(ctx context.Context, groupID string, banned bool) error {
	filter := bson.M{"_id": groupID}
	update := bson.M{"$set": bson.M{"is_banned": banned, "updated_at": time.Now().UTC()}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return contract.ErrGroupNotFound
	}
	return nil
}

func (r *GroupRepository) GetPopularTags(ctx context.Context, limit int) ([]entity.TagCount, error) {
	return popularTags(ctx, r.collection, limit)
}

func (r *GroupRepository) CountGroups(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *GroupRepository) CountGroupsPerDay(ctx context.Context, since time.Time) ([]entity.DayCount, error) {
	return countPerDay(ctx, r.collection, since)
}

// inTransaction runs fn as a single multi-document transaction, so a
// failure part way through leaves no partial writes behind.
func inTransaction(ctx context.Context, client *mongo.Client, fn func(sc mongo.SessionContext) error) error {
	session, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
