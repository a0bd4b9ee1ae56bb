// Package protocol implements the Halite engine wire format: a
// whitespace-delimited stdin token stream and a space-separated stdout
// command line per turn (§6).
package protocol

import (
	"bufio"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/MyForking/halite3-bot-1/internal/domain/grid"
	"github.com/MyForking/halite3-bot-1/internal/domain/shared"
	"github.com/MyForking/halite3-bot-1/internal/domain/world"
)

// Reader parses the engine's startup handshake and per-turn frames off an
// underlying stream. It is stateful: ReadConstants must run first, then
// ReadInit, then ReadTurn once per turn.
type Reader struct {
	br *bufio.Reader
	sc *bufio.Scanner
}

// NewReader wraps r for token-at-a-time parsing.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReaderSize(r, 1<<20)}
}

// constantsWire mirrors the subset of the engine's opening JSON constants
// line that this bot consults; unrecognized keys are ignored.
type constantsWire struct {
	MaxTurns                int `json:"MAX_TURNS"`
	ExtractRatio            int `json:"EXTRACT_RATIO"`
	MoveCostRatio           int `json:"MOVE_COST_RATIO"`
	DropoffCost             int `json:"DROPOFF_COST"`
	ShipCost                int `json:"SHIP_COST"`
	MaxEnergy               int `json:"MAX_ENERGY"`
	InspirationRadius       int `json:"INSPIRATION_RADIUS"`
	InspirationShipCount    int `json:"INSPIRATION_SHIP_COUNT"`
	InspiredBonusMultiplier int `json:"INSPIRED_BONUS_MULTIPLIER"`
}

// ReadConstants reads and parses the single opening JSON line, then
// switches the reader into word-tokenized mode for everything after it.
func (r *Reader) ReadConstants() (world.Constants, error) {
	line, err := r.br.ReadString('\n')
	if err != nil && line == "" {
		return world.Constants{}, err
	}

	var wire constantsWire
	if jsonErr := json.Unmarshal([]byte(strings.TrimSpace(line)), &wire); jsonErr != nil {
		return world.Constants{}, shared.NewMalformedInputError(line, "constants line is not valid JSON")
	}

	sc := bufio.NewScanner(r.br)
	sc.Buffer(make([]byte, 1<<20), 1<<20)
	sc.Split(bufio.ScanWords)
	r.sc = sc

	return world.Constants{
		ExtractRatio:            wire.ExtractRatio,
		MoveCostRatio:           wire.MoveCostRatio,
		DropoffCost:             wire.DropoffCost,
		ShipCost:                wire.ShipCost,
		MaxTurns:                wire.MaxTurns,
		InspirationRadius:       wire.InspirationRadius,
		InspirationShipCount:    wire.InspirationShipCount,
		InspiredBonusMultiplier: wire.InspiredBonusMultiplier,
		MaxHalite:               wire.MaxEnergy,
	}, nil
}

// token returns the next whitespace-delimited token. A clean end of
// stream (the engine closing stdin once the match is over) surfaces as
// io.EOF so the turn loop can distinguish "game over" from a genuinely
// malformed frame.
func (r *Reader) token() (string, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.sc.Text(), nil
}

func (r *Reader) int() (int, error) {
	tok, err := r.token()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, shared.NewMalformedInputError(tok, "expected an integer")
	}
	return v, nil
}

// ReadInit parses "num_players my_id", each player's shipyard header, and
// the initial width/height halite grid, returning a freshly built World
// with every player registered (ships/dropoffs/halite are filled in by
// the first ReadTurn call).
func (r *Reader) ReadInit() (*world.World, error) {
	numPlayers, err := r.int()
	if err != nil {
		return nil, err
	}
	myID, err := r.int()
	if err != nil {
		return nil, err
	}

	type header struct {
		id  int
		pos grid.Position
	}
	headers := make([]header, 0, numPlayers)
	for i := 0; i < numPlayers; i++ {
		pid, err := r.int()
		if err != nil {
			return nil, err
		}
		sx, err := r.int()
		if err != nil {
			return nil, err
		}
		sy, err := r.int()
		if err != nil {
			return nil, err
		}
		headers = append(headers, header{id: pid, pos: grid.Position{X: sx, Y: sy}})
	}

	width, err := r.int()
	if err != nil {
		return nil, err
	}
	height, err := r.int()
	if err != nil {
		return nil, err
	}

	w := world.NewWorld(width, height, world.Constants{})
	w.Me = myID

	for _, h := range headers {
		w.Players[h.id] = &world.Player{ID: h.id, ShipyardPos: h.pos}
		shipyardCell := w.Map.At(h.pos)
		shipyardCell.Structure = world.Structure{Kind: world.StructureShipyard, PlayerID: h.id}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			halite, err := r.int()
			if err != nil {
				return nil, err
			}
			w.Map.At(grid.Position{X: x, Y: y}).Halite = halite
		}
	}

	return w, nil
}

// ReadTurn parses one turn frame into w, replacing every player's
// treasury, ship set and drop-off set and applying the trailing cell
// update list (§6). It preserves w.Constants/w.Map sizing/w.Me across
// calls; the caller supplies w.Constants once up front.
func (r *Reader) ReadTurn(w *world.World) (err error) {
	turn, err := r.int()
	if err == io.EOF {
		return io.EOF // clean end of match, not a malformed-input condition
	}
	if err != nil {
		return err
	}
	// Past the turn number, running out of input means a truncated frame.
	defer func() {
		if err == io.EOF {
			err = shared.NewMalformedInputError("", "stream ended in the middle of a turn frame")
		}
	}()
	w.Turn = turn

	for id := range w.Ships {
		delete(w.Ships, id)
	}
	for id := range w.Dropoffs {
		delete(w.Dropoffs, id)
	}

	for range w.Players {
		pid, err := r.int()
		if err != nil {
			return err
		}
		numShips, err := r.int()
		if err != nil {
			return err
		}
		numDropoffs, err := r.int()
		if err != nil {
			return err
		}
		halite, err := r.int()
		if err != nil {
			return err
		}

		player, ok := w.Players[pid]
		if !ok {
			return shared.NewMalformedInputError(strconv.Itoa(pid), "unknown player id in turn header")
		}
		player.Halite = halite
		player.ShipIDs = player.ShipIDs[:0]
		player.DropoffIDs = player.DropoffIDs[:0]

		for i := 0; i < numShips; i++ {
			sid, err := r.int()
			if err != nil {
				return err
			}
			sx, err := r.int()
			if err != nil {
				return err
			}
			sy, err := r.int()
			if err != nil {
				return err
			}
			cargo, err := r.int()
			if err != nil {
				return err
			}
			ship, err := world.NewShip(world.ShipID(sid), pid, grid.Position{X: sx, Y: sy}, cargo, w.Constants.MaxHalite)
			if err != nil {
				return shared.NewMalformedInputError(strconv.Itoa(sid), err.Error())
			}
			w.Ships[ship.ID()] = ship
			player.ShipIDs = append(player.ShipIDs, ship.ID())
		}

		for i := 0; i < numDropoffs; i++ {
			did, err := r.int()
			if err != nil {
				return err
			}
			dx, err := r.int()
			if err != nil {
				return err
			}
			dy, err := r.int()
			if err != nil {
				return err
			}
			pos := grid.Position{X: dx, Y: dy}
			w.Dropoffs[did] = &world.Dropoff{ID: did, Owner: pid, Position: pos}
			w.Map.At(pos).Structure = world.Structure{Kind: world.StructureDropoff, PlayerID: pid, DropoffID: did}
			player.DropoffIDs = append(player.DropoffIDs, did)
		}
	}

	numUpdates, err := r.int()
	if err != nil {
		return err
	}
	for i := 0; i < numUpdates; i++ {
		x, err := r.int()
		if err != nil {
			return err
		}
		y, err := r.int()
		if err != nil {
			return err
		}
		halite, err := r.int()
		if err != nil {
			return err
		}
		w.Map.At(grid.Position{X: x, Y: y}).Halite = halite
	}

	return nil
}
