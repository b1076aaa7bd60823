package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pet-events/internal/domain/events"
	"pet-events/internal/errdef"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const EventsCollection = "eventos"

// eventDoc es el documento tal como se guarda en la colección eventos.
type eventDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Titulo        string             `bson:"titulo"`
	Descripcion   string             `bson:"descripcion"`
	FechaCreacion time.Time          `bson:"fechaCreacion"`
	FechaEvento   string             `bson:"fechaEvento"`
	LugarEvento   string             `bson:"lugarEvento"`
	Creador       string             `bson:"creador"`
	Enabled       bool               `bson:"enabled"`
	Picture       string             `bson:"picture"`
}

func toDoc(e events.Event) (eventDoc, error) {
	d := eventDoc{
		Titulo:        e.Title,
		Descripcion:   e.Description,
		FechaCreacion: e.SavedAt,
		FechaEvento:   e.EventDate,
		LugarEvento:   e.Venue,
		Creador:       e.OwnerID,
		Enabled:       e.Enabled,
		Picture:       e.Picture,
	}
	if e.ID != "" {
		oid, err := primitive.ObjectIDFromHex(e.ID)
		if err != nil {
			return eventDoc{}, fmt.Errorf("invalid evento id %q: %w", e.ID, err)
		}
		d.ID = oid
	}
	return d, nil
}

func (d eventDoc) toEvent() events.Event {
	return events.Event{
		ID:          d.ID.Hex(),
		OwnerID:     d.Creador,
		Title:       d.Titulo,
		Description: d.Descripcion,
		EventDate:   d.FechaEvento,
		Venue:       d.LugarEvento,
		Picture:     d.Picture,
		SavedAt:     d.FechaCreacion,
		Enabled:     d.Enabled,
	}
}

type EventsRepo struct {
	coll *mongo.Collection
}

func NewEventsRepo(db *mongo.Database) *EventsRepo {
	return &EventsRepo{coll: db.Collection(EventsCollection)}
}

// EnsureIndexes crea el índice por (creador, enabled) que usan los listados.
func (r *EventsRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "creador", Value: 1}, {Key: "enabled", Value: 1}},
	})
	return err
}

// filter traduce la query. ok=false si el id no es un ObjectID válido:
// en ese caso no puede haber match y se trata como no encontrado.
func filter(q events.Query) (bson.D, bool) {
	f := bson.D{}
	if q.ID != "" {
		oid, err := primitive.ObjectIDFromHex(q.ID)
		if err != nil {
			return nil, false
		}
		f = append(f, bson.E{Key: "_id", Value: oid})
	}
	if q.OwnerID != "" {
		f = append(f, bson.E{Key: "creador", Value: q.OwnerID})
	}
	if q.OnlyEnabled {
		f = append(f, bson.E{Key: "enabled", Value: true})
	}
	return f, true
}

func (r *EventsRepo) Find(ctx context.Context, q events.Query) ([]events.Event, error) {
	out := make([]events.Event, 0)

	f, ok := filter(q)
	if !ok {
		return out, nil
	}

	cur, err := r.coll.Find(ctx, f)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var d eventDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, d.toEvent())
	}
	return out, cur.Err()
}

func (r *EventsRepo) FindOne(ctx context.Context, q events.Query) (events.Event, error) {
	f, ok := filter(q)
	if !ok {
		return events.Event{}, errdef.NewNotFound("evento %q not found", q.ID)
	}

	var d eventDoc
	if err := r.coll.FindOne(ctx, f).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return events.Event{}, errdef.NewNotFound("evento %q not found", q.ID)
		}
		return events.Event{}, err
	}
	return d.toEvent(), nil
}

func (r *EventsRepo) Save(ctx context.Context, e events.Event) (events.Event, error) {
	d, err := toDoc(e)
	if err != nil {
		return events.Event{}, err
	}

	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
		if _, err := r.coll.InsertOne(ctx, d); err != nil {
			return events.Event{}, err
		}
		return d.toEvent(), nil
	}

	_, err = r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: d.ID}}, d, options.Replace().SetUpsert(true))
	if err != nil {
		return events.Event{}, err
	}
	return d.toEvent(), nil
}
