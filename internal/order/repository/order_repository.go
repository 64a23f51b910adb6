package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"orderhub/internal/domain"
	"orderhub/internal/errors"
)

type orderDocument struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty"`
	UserID     string              `bson:"user_id"`
	Items      []orderItemDocument `bson:"items"`
	TotalPrice float64             `bson:"total_price"`
	Status     string              `bson:"status"`
}

type orderItemDocument struct {
	ProductID string  `bson:"product_id"`
	Name      string  `bson:"name"`
	Price     float64 `bson:"price"`
	Quantity  int     `bson:"quantity"`
}

type MongoOrderRepository struct {
	coll *mongo.Collection
}

func NewMongoOrderRepository(coll *mongo.Collection) *MongoOrderRepository {
	return &MongoOrderRepository{coll: coll}
}

func (r *MongoOrderRepository) Insert(ctx context.Context, order domain.Order) (string, error) {
	doc := toDocument(order)

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", errors.NewInternalError("inserting order", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.NewInternalError(fmt.Sprintf("unexpected inserted id type %T", res.InsertedID), nil)
	}

	return oid.Hex(), nil
}

func (r *MongoOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	oid, err := parseOrderID(id)
	if err != nil {
		return nil, err
	}

	var doc orderDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
	}
	if err != nil {
		return nil, errors.NewInternalError("querying order by id", err)
	}

	return doc.toDomain(), nil
}

// Update applies only the fields set in fields and returns the document as it
// is after the write.
func (r *MongoOrderRepository) Update(ctx context.Context, id string, fields domain.OrderUpdate) (*domain.Order, error) {
	oid, err := parseOrderID(id)
	if err != nil {
		return nil, err
	}

	set := updateSet(fields)
	if len(set) == 0 {
		return nil, errors.NewInvalidArgumentError("no fields provided for update")
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc orderDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
	}
	if err != nil {
		return nil, errors.NewInternalError("updating order", err)
	}

	return doc.toDomain(), nil
}

func (r *MongoOrderRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseOrderID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errors.NewInternalError("deleting order", err)
	}

	if res.DeletedCount == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
	}

	return nil
}

// parseOrderID reports a malformed id as not found; callers cannot tell the
// two apart.
func parseOrderID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
	}
	return oid, nil
}

func updateSet(fields domain.OrderUpdate) bson.M {
	set := bson.M{}
	if fields.Status != nil {
		set["status"] = *fields.Status
	}
	return set
}

func toDocument(order domain.Order) orderDocument {
	items := make([]orderItemDocument, len(order.Items))
	for i, item := range order.Items {
		items[i] = orderItemDocument{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}

	return orderDocument{
		UserID:     order.UserID,
		Items:      items,
		TotalPrice: order.TotalPrice,
		Status:     order.Status,
	}
}

func (d orderDocument) toDomain() *domain.Order {
	items := make([]domain.OrderItem, len(d.Items))
	for i, item := range d.Items {
		items[i] = domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}

	return &domain.Order{
		ID:         d.ID.Hex(),
		UserID:     d.UserID,
		Items:      items,
		TotalPrice: d.TotalPrice,
		Status:     d.Status,
	}
}
