package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/abcroll/midi"
	"github.com/jsphweid/abcroll/model"
	"github.com/jsphweid/abcroll/roll"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the converter over HTTP",
	Long:  `Serves the converter over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

// HandleConvert compiles the posted songs and responds with the MIDI bytes,
// one track per song.
func HandleConvert(w http.ResponseWriter, r *http.Request) {
	var input model.ConvertRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, "Could not unmarshal request body: "+err.Error(), 400)
		return
	}
	if len(input.Songs) == 0 {
		writeError(w, "Need at least one song...", 400)
		return
	}

	var rolls []model.Timeline
	for i, song := range input.Songs {
		timeline, err := roll.FromLines(song)
		if err != nil {
			writeError(w, fmt.Sprintf("Could not compile song %v: %v", i+1, err), 400)
			return
		}
		rolls = append(rolls, timeline)
	}

	w.Header().Set("Content-Type", "audio/midi")
	w.Header().Set("Content-Disposition", "attachment; filename="+uuid.New().String()+".mid")
	if _, err := midi.FromRolls(rolls).WriteTo(w); err != nil {
		fmt.Printf("Could not write midi response: %v\n", err)
	}
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/convert", HandleConvert).Methods("POST")
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":8080", handler))
}
